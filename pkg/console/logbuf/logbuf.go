// Package logbuf stores console log entries and the display metrics derived from them.
package logbuf

import (
	"image/color"
	"strings"
	"sync"
	"sync/atomic"
)

// Severity classifies a log line and drives its prefix and color.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityException
)

// String returns the lowercase severity name
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityException:
		return "exception"
	default:
		return "unknown"
	}
}

// IsFailure reports whether entries of this severity carry a stack trace section.
func (s Severity) IsFailure() bool {
	return s == SeverityError || s == SeverityException
}

// Entry is a single log line. Everything except the override color is fixed at construction.
type Entry struct {
	severity       Severity
	message        string
	stackTrace     string
	lineCount      int
	stackLineCount int

	override atomic.Pointer[color.RGBA]
}

// NewEntry builds an entry and derives its line metrics.
// A single-line message has a lineCount of 0 so it gets no trailing spacing.
func NewEntry(severity Severity, message, stackTrace string) *Entry {
	e := &Entry{
		severity:   severity,
		message:    message,
		stackTrace: stackTrace,
	}
	e.lineCount = strings.Count(message, "\n") + 1
	if e.lineCount == 1 {
		e.lineCount = 0
	}
	if stackTrace != "" {
		e.stackLineCount = strings.Count(stackTrace, "\n") + 1
	}
	return e
}

func (e *Entry) Severity() Severity  { return e.severity }
func (e *Entry) Message() string     { return e.message }
func (e *Entry) StackTrace() string  { return e.stackTrace }
func (e *Entry) LineCount() int      { return e.lineCount }
func (e *Entry) StackLineCount() int { return e.stackLineCount }

// Color returns the override color, or false when the severity default applies.
func (e *Entry) Color() (color.RGBA, bool) {
	c := e.override.Load()
	if c == nil {
		return color.RGBA{}, false
	}
	return *c, true
}

// SetColor sets the override color once; later calls are ignored.
// It returns the entry so call sites can chain it onto an append.
func (e *Entry) SetColor(c color.RGBA) *Entry {
	e.override.CompareAndSwap(nil, &c)
	return e
}

// Buffer is an append-only list of entries, safe for appends from any goroutine.
// An entry appended before Snapshot is called is visible in that snapshot.
type Buffer struct {
	mu         sync.RWMutex
	entries    []*Entry
	maxEntries int
}

// New creates a buffer. maxEntries <= 0 keeps every entry.
func New(maxEntries int) *Buffer {
	return &Buffer{maxEntries: maxEntries}
}

// Append constructs and stores an entry.
func (b *Buffer) Append(severity Severity, message, stackTrace string) *Entry {
	return b.store(NewEntry(severity, message, stackTrace))
}

// AppendColored appends an entry with its override color already set.
func (b *Buffer) AppendColored(severity Severity, message, stackTrace string, c color.RGBA) *Entry {
	return b.store(NewEntry(severity, message, stackTrace).SetColor(c))
}

// store publishes e, evicting the oldest entries when a retention cap is set
func (b *Buffer) store(e *Entry) *Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	if b.maxEntries > 0 && len(b.entries) > b.maxEntries {
		b.entries = b.entries[len(b.entries)-b.maxEntries:]
	}
	return e
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}

// Len returns the number of stored entries
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Snapshot returns the entries in append order. The slice is a copy; the entries are shared.
func (b *Buffer) Snapshot() []*Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Entry, len(b.entries))
	copy(out, b.entries)
	return out
}
