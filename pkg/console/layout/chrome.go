package layout

import (
	"image/color"

	"devconsole/pkg/console/geometry"
)

// ChromeStyle colors the window furniture
type ChromeStyle struct {
	Title          string
	WindowBack     color.RGBA
	TitleBar       color.RGBA
	CloseButton    color.RGBA
	InputActive    color.RGBA
	InputInactive  color.RGBA
	ResizeHandle   color.RGBA
	Label          color.RGBA
	InputText      color.RGBA
	InputTextInset float64
}

// Chrome schedules the window background, title bar, close button, input
// field and resize handle. It is drawn whenever the console is enabled,
// independent of the log contents.
func (e *Engine) Chrome(r geometry.Rects, input string, typing bool, s ChromeStyle) []Op {
	inputBack := s.InputInactive
	if typing {
		inputBack = s.InputActive
	}

	titleLabel := r.Title
	titleLabel.X += r.Title.W/2 - e.measurer.Advance(s.Title)/2
	closeLabel := r.Close
	closeLabel.X += (r.Close.W - e.measurer.Advance("X")) / 2
	inputLabel := r.Input
	inputLabel.X += s.InputTextInset
	inputLabel.W -= s.InputTextInset

	return []Op{
		{Kind: OpFill, Rect: r.Window, Color: s.WindowBack},
		{Kind: OpFill, Rect: r.Title, Color: s.TitleBar},
		{Kind: OpText, Rect: titleLabel, Text: s.Title, Color: s.Label},
		{Kind: OpFill, Rect: r.Close, Color: s.CloseButton},
		{Kind: OpText, Rect: closeLabel, Text: "X", Color: s.Label},
		{Kind: OpFill, Rect: r.Input, Color: inputBack},
		{Kind: OpText, Rect: inputLabel, Text: input, Color: s.InputText},
		{Kind: OpFill, Rect: r.ResizeHandle, Color: s.ResizeHandle},
	}
}
