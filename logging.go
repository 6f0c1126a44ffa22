package gizmo

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "LEVEL?"
}

// Logger receives the gizmo's lifecycle messages: mode, space and drag
// changes at Debug, registry loads at Info, setup mistakes at Warn and mesh
// load failures at Error. Per-sample math never logs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// WriterLogger writes one line per message at or above its level.
type WriterLogger struct {
	mu     sync.Mutex
	level  Level
	prefix string
	out    *log.Logger
}

func NewWriterLogger(w io.Writer, prefix string, level Level) *WriterLogger {
	return &WriterLogger{
		level:  level,
		prefix: prefix,
		out:    log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *WriterLogger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *WriterLogger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *WriterLogger) logf(level Level, format string, args ...any) {
	if level < l.Level() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		l.out.Printf("[%s] %s: %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s: %s", level, msg)
}

func (l *WriterLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *WriterLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *WriterLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *WriterLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

type nopLogger struct{}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}

func loggerOrNop(l Logger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return l
}
