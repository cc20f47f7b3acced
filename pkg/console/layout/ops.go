// Package layout projects the log history and the overlay chrome onto draw operations.
package layout

import (
	"image/color"

	"devconsole/pkg/console/geometry"
	"devconsole/pkg/console/logbuf"
)

// Measurer is the host's text measurement capability.
type Measurer interface {
	// Advance returns the width of text laid out on one line.
	Advance(text string) float64
	// WrappedHeight returns the height of text wrapped to width.
	WrappedHeight(text string, width float64) float64
}

// Painter is the host's primitive drawing capability.
type Painter interface {
	FillRect(r geometry.Rect, c color.Color)
	// DrawText draws text top-down from the top-left of r, wrapping at r's width.
	DrawText(r geometry.Rect, text string, c color.Color, bold bool)
}

// OpKind is the primitive an Op issues
type OpKind int

const (
	OpFill OpKind = iota
	OpText
)

// Op is one scheduled draw call
type Op struct {
	Kind  OpKind
	Rect  geometry.Rect
	Text  string
	Color color.RGBA
	Bold  bool

	// Entry is the log entry the op renders, nil for chrome
	Entry *logbuf.Entry
}

// Paint issues the op on p
func (op Op) Paint(p Painter) {
	switch op.Kind {
	case OpFill:
		p.FillRect(op.Rect, op.Color)
	case OpText:
		p.DrawText(op.Rect, op.Text, op.Color, op.Bold)
	}
}

// PaintAll issues ops in order
func PaintAll(p Painter, ops []Op) {
	for _, op := range ops {
		op.Paint(p)
	}
}
