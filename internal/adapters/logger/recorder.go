package logger

import (
	"sync"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Entry is a single message captured by a Recorder.
type Entry struct {
	Level         string
	Msg           string
	KeysAndValues []interface{}
}

// Recorder keeps every message in memory so callers can inspect what was
// reported. It is the test double shared by the package tests across the
// module and is not wired into any production path.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ ports.Logger = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, msg string, kv []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, KeysAndValues: kv})
}

// Debug records a debug message.
func (r *Recorder) Debug(msg string, kv ...interface{}) { r.record("debug", msg, kv) }

// Info records an info message.
func (r *Recorder) Info(msg string, kv ...interface{}) { r.record("info", msg, kv) }

// Warn records a warning message.
func (r *Recorder) Warn(msg string, kv ...interface{}) { r.record("warn", msg, kv) }

// Error records an error message.
func (r *Recorder) Error(msg string, kv ...interface{}) { r.record("error", msg, kv) }

// Close is a no-op.
func (r *Recorder) Close() error { return nil }

// Entries returns a copy of the recorded messages, optionally filtered by level.
func (r *Recorder) Entries(level string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Entry
	for _, e := range r.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
