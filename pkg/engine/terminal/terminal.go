// Package terminal answers questions about the terminal the process runs in.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns f's width and height in cells.
// Falls back to the defaults if f is not a terminal or the size is unknown.
func Size(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// WriterSize is Size for w when it is a file, the defaults otherwise.
func WriterSize(w io.Writer) (width, height int) {
	if f, ok := w.(*os.File); ok {
		return Size(f)
	}
	return DefaultWidth, DefaultHeight
}
