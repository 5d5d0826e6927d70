package fswatcher

import (
	"errors"
	"io/fs"
	"sort"
	"sync"
	"time"
)

const MinInterval = time.Millisecond * 20

var (
	errClosed         = errors.New("poller is closed")
	errAlreadyRunning = errors.New("watcher is already running")
)

// fsPoller is polling implementation of FsWatcher interface
type fsPoller struct {
	// watched files and dirs
	watches map[string]struct{}
	// last known state of the regular files inside watched paths
	files map[string]fs.FileInfo

	events     chan Event
	errors     chan error
	done       chan struct{}
	shouldSkip func(string, fs.FileInfo) bool
	fsys       fs.FS

	mu      sync.Mutex
	running bool
	closed  bool
}

// AddShouldSkipHook sets a filter for paths that must not be reported.
// Returning true for a directory skips the whole directory.
func (p *fsPoller) AddShouldSkipHook(fn func(string, fs.FileInfo) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shouldSkip = fn
}

// Add adds name into the list of the watched paths and returns the files
// found under it. Changes of these files are reported starting with the next poll.
func (p *fsPoller) Add(name string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, errClosed
	}

	list, err := p.listFiles(name)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list))
	for fname, fi := range list {
		p.files[fname] = fi
		names = append(names, fname)
	}
	sort.Strings(names)

	p.watches[name] = struct{}{}
	return names, nil
}

// Remove stops watching name and forgets the files found under it.
func (p *fsPoller) Remove(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.watches, name)
	for fname := range p.files {
		if underPath(fname, name) {
			delete(p.files, fname)
		}
	}
	return nil
}

func underPath(fname, dir string) bool {
	if dir == "." || fname == dir {
		return true
	}
	return len(fname) > len(dir) && fname[:len(dir)] == dir && fname[len(dir)] == '/'
}

// listFiles returns the regular files under name, or name itself if it is a file.
func (p *fsPoller) listFiles(name string) (map[string]fs.FileInfo, error) {
	files := map[string]fs.FileInfo{}

	fi, err := fs.Stat(p.fsys, name)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		if p.shouldSkip == nil || !p.shouldSkip(name, fi) {
			files[name] = fi
		}
		return files, nil
	}

	err = fs.WalkDir(p.fsys, name, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if path != name && p.shouldSkip != nil && p.shouldSkip(path, info) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files[path] = info
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// scan compares the watched paths with their last known state and
// returns the changes in a stable order.
func (p *fsPoller) scan() ([]Event, []error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	current := map[string]fs.FileInfo{}
	for path := range p.watches {
		files, err := p.listFiles(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				delete(p.watches, path)
				continue
			}
			errs = append(errs, err)
			continue
		}
		for name, fi := range files {
			current[name] = fi
		}
	}

	var events []Event
	for name, oldInfo := range p.files {
		newInfo, exists := current[name]
		switch {
		case !exists:
			events = append(events, Event{Name: name, Op: Remove})
		case !newInfo.ModTime().Equal(oldInfo.ModTime()) || newInfo.Size() != oldInfo.Size():
			events = append(events, Event{Name: name, Op: Write})
		}
	}
	for name := range current {
		if _, known := p.files[name]; !known {
			events = append(events, Event{Name: name, Op: Create})
		}
	}
	p.files = current

	sort.Slice(events, func(i, j int) bool {
		if events[i].Name != events[j].Name {
			return events[i].Name < events[j].Name
		}
		return events[i].Op < events[j].Op
	})
	return events, errs
}

// WatchedList returns the files known to the poller
func (p *fsPoller) WatchedList() map[string]fs.FileInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	files := make(map[string]fs.FileInfo, len(p.files))
	for k, v := range p.files {
		files[k] = v
	}
	return files
}

// Start polls the watched paths every interval until Close is called.
func (p *fsPoller) Start(interval time.Duration) error {
	if interval < MinInterval {
		interval = MinInterval
	}

	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return errAlreadyRunning
	}
	p.running = true
	p.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return nil
		case <-ticker.C:
		}

		events, errs := p.scan()
		for _, err := range errs {
			select {
			case p.errors <- err:
			case <-p.done:
				return nil
			}
		}
		for _, e := range events {
			select {
			case p.events <- e:
			case <-p.done:
				return nil
			}
		}
	}
}

func (p *fsPoller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.done)
	return nil
}

func (p *fsPoller) Errors() <-chan error {
	return p.errors
}

func (p *fsPoller) Events() <-chan Event {
	return p.events
}
