package fswatcher

import (
	"io/fs"
	"time"
)

// Event represents a single file system notification
type Event struct {
	Name string // Path to the file relative to the watched file system
	Op   Op     // File operation that triggered the event.
}

// Op describes a type of event
type Op uint32

// Operations
const (
	Create Op = 1 << iota
	Write
	Remove
)

func (op Op) String() string {
	switch op {
	case Create:
		return "CREATE"
	case Write:
		return "WRITE"
	case Remove:
		return "REMOVE"
	}
	return "?"
}

// FsWatcher is fsnotify-like interface for implementing file watchers
type FsWatcher interface {
	Events() <-chan Event
	Errors() <-chan error
	Add(name string) ([]string, error)
	Remove(name string) error
	Close() error
	Start(interval time.Duration) error
	AddShouldSkipHook(func(path string, fi fs.FileInfo) bool)
}

// NewFsPoller creates a watcher that polls fsys for changes.
func NewFsPoller(fsys fs.FS) FsWatcher {
	return newFsPoller(fsys)
}

func newFsPoller(fsys fs.FS) *fsPoller {
	return &fsPoller{
		events:  make(chan Event),
		errors:  make(chan error),
		done:    make(chan struct{}),
		fsys:    fsys,
		watches: map[string]struct{}{},
		files:   map[string]fs.FileInfo{},
	}
}
