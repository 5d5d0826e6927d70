package log

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gookit/color"
)

type Logger interface {
	Error(format string, v ...any)
	Warning(format string, v ...any)
	Info(format string, v ...any)
	Close() error
}

// New returns a logger writing into the file at path, or to stderr if path
// is empty. Stdout is left to the program output.
func New(path string) (Logger, error) {
	if path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return &StdLog{
			err:  log.New(file, "ERROR ", log.Ldate|log.Ltime),
			wrn:  log.New(file, "WARN ", log.Ldate|log.Ltime),
			inf:  log.New(file, "INFO ", log.Ldate|log.Ltime),
			file: file,
		}, nil
	}
	return &StdLog{
		err: log.New(os.Stderr, color.Red.Sprint("error")+" ", 0),
		wrn: log.New(os.Stderr, color.Yellow.Sprint("warn")+" ", 0),
		inf: log.New(os.Stderr, "", 0),
	}, nil
}

type StdLog struct {
	err, wrn, inf *log.Logger
	file          *os.File
}

func (l *StdLog) Error(format string, v ...any) {
	_ = l.err.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Info(format string, v ...any) {
	_ = l.inf.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Warning(format string, v ...any) {
	_ = l.wrn.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type EmptyLog struct{}

func NewEmptyLog() Logger { return EmptyLog{} }

func (l EmptyLog) Error(string, ...any)   {}
func (l EmptyLog) Warning(string, ...any) {}
func (l EmptyLog) Info(string, ...any)    {}
func (l EmptyLog) Close() error           { return nil }

type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "?"
}

// Record is a single message kept by Recorder
type Record struct {
	Level   Level
	Message string
}

// Recorder keeps log messages in memory.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) add(level Level, format string, v ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Level: level, Message: fmt.Sprintf(format, v...)})
}

func (r *Recorder) Error(format string, v ...any)   { r.add(LevelError, format, v...) }
func (r *Recorder) Warning(format string, v ...any) { r.add(LevelWarning, format, v...) }
func (r *Recorder) Info(format string, v ...any)    { r.add(LevelInfo, format, v...) }
func (r *Recorder) Close() error                    { return nil }

// Records returns a copy of the recorded messages of the given level.
func (r *Recorder) Records(level Level) []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []Record
	for _, rec := range r.records {
		if rec.Level == level {
			result = append(result, rec)
		}
	}
	return result
}
