// Package testutil provides logging helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes through t.Log, so
// output only shows for failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Entry is one captured log record with its attributes flattened.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder captures log records for assertions.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	attrs   []slog.Attr
	root    *Recorder
}

// NewRecorder returns a logger backed by a fresh Recorder.
func NewRecorder() (*slog.Logger, *Recorder) {
	r := &Recorder{}
	r.root = r
	return slog.New(r), r
}

// Entries returns a copy of the captured records.
func (r *Recorder) Entries() []Entry {
	r.root.mu.Lock()
	defer r.root.mu.Unlock()
	return append([]Entry(nil), r.root.entries...)
}

// Find returns the captured records at level with the given message.
func (r *Recorder) Find(level slog.Level, message string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level && e.Message == message {
			out = append(out, e)
		}
	}
	return out
}

// Enabled implements slog.Handler. Every level is captured.
func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	entry := Entry{Level: rec.Level, Message: rec.Message, Attrs: map[string]string{}}
	for _, a := range r.attrs {
		entry.Attrs[a.Key] = a.Value.String()
	}
	rec.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value.String()
		return true
	})

	r.root.mu.Lock()
	r.root.entries = append(r.root.entries, entry)
	r.root.mu.Unlock()
	return nil
}

// WithAttrs implements slog.Handler.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr(nil), r.attrs...), attrs...)
	return &Recorder{attrs: merged, root: r.root}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (r *Recorder) WithGroup(string) slog.Handler { return r }
