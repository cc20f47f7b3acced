// Package input abstracts the host's keyboard and pointer into console actions.
package input

import "github.com/rivo/uniseg"

// Source is the per-tick view of the host's input devices.
// Edge queries report transitions that happened since the previous tick.
type Source interface {
	// Pointer returns the pointer position in screen coordinates.
	Pointer() (x, y float64)
	PointerPressed() bool
	PointerReleased() bool

	// Released reports a key-up edge on any code bound to a.
	Released(a Action) bool
	// Held reports whether any code bound to a is currently down.
	Held(a Action) bool

	// Chars returns the printable text typed this tick.
	Chars() []rune
}

// Latch turns a held key into a single trigger per press.
// It fires on the first tick a key is held and re-arms only after release.
type Latch struct {
	down bool
}

// Fire reports whether this tick is the first one of a press
func (l *Latch) Fire(held bool) bool {
	if !held {
		l.down = false
		return false
	}
	if l.down {
		return false
	}
	l.down = true
	return true
}

// Reset re-arms the latch
func (l *Latch) Reset() {
	l.down = false
}

// TrimLastGrapheme removes the final user-perceived character from s.
func TrimLastGrapheme(s string) string {
	if s == "" {
		return s
	}
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}
