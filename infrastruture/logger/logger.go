// Package logger provides the prefixed, colour-tagged logger used across the service.
package logger

import (
	"errors"
	"io"
	"log"
	"sync"
)

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes lines of the form "<time> [PREFIX] [LEVEL] message".
// The prefix is painted with the colour given to New.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
	sync.Mutex
}

// New creates a Logger writing to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", colorGreen, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", colorYellow, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print("ERROR", colorRed, msg)
}

func (l *Logger) print(level, levelColor, msg string) {
	l.Lock()
	defer l.Unlock()
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, colorReset, levelColor, level, colorReset, msg)
}
