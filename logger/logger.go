// Package logger holds the log sink the pipeline writes to.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

type Sink interface {
	Info(format string, a ...interface{})
	Error(format string, a ...interface{})
}

// StdSink prefixes each line with its level and hands it to a *log.Logger.
type StdSink struct {
	L *log.Logger
}

func NewStdSink() StdSink {
	return StdSink{L: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s StdSink) Info(format string, a ...interface{}) {
	s.L.Printf("[INFO] %s", fmt.Sprintf(format, a...))
}

func (s StdSink) Error(format string, a ...interface{}) {
	s.L.Printf("[ERROR] %s", fmt.Sprintf(format, a...))
}

type Entry struct {
	Level   string
	Message string
}

// Recorder keeps every message in memory.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
}

func (r *Recorder) Info(format string, a ...interface{}) {
	r.add("INFO", fmt.Sprintf(format, a...))
}

func (r *Recorder) Error(format string, a ...interface{}) {
	r.add("ERROR", fmt.Sprintf(format, a...))
}

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{Level: level, Message: msg})
}

func (r *Recorder) Messages(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := []string{}
	for _, e := range r.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}
