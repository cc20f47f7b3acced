package layout

import (
	"image/color"

	"devconsole/pkg/console/geometry"
	"devconsole/pkg/console/logbuf"
)

// Prefixes drawn before each message, by severity
const (
	PrefixInfo    = "- "
	PrefixWarning = "|!| "
	PrefixError   = "{!!} "
	PrefixTrace   = "[] "
)

// Metrics are the line measurements the layout works in
type Metrics struct {
	LineHeight float64
	// Padding separates the newest line from the window's bottom edge and
	// is added to the spacing after multi-line entries.
	Padding float64
}

// Palette holds the fixed colors used for log lines
type Palette struct {
	Text  color.RGBA
	Alert color.RGBA
}

// Engine lays out the log history bottom-up inside the window rect.
type Engine struct {
	metrics  Metrics
	palette  Palette
	measurer Measurer
}

// NewEngine creates a layout engine
func NewEngine(m Metrics, p Palette, measurer Measurer) *Engine {
	return &Engine{metrics: m, palette: p, measurer: measurer}
}

// Metrics returns the engine's line metrics
func (e *Engine) Metrics() Metrics { return e.metrics }

// style picks the prefix and color for an entry
func (e *Engine) style(entry *logbuf.Entry) (string, color.RGBA) {
	switch entry.Severity() {
	case logbuf.SeverityWarning:
		return PrefixWarning, e.palette.Alert
	case logbuf.SeverityError, logbuf.SeverityException:
		return PrefixError, e.palette.Alert
	default:
		if c, ok := entry.Color(); ok {
			return PrefixInfo, c
		}
		return PrefixInfo, e.palette.Text
	}
}

// Log walks entries newest-first, stacking them upwards from the bottom of
// win, and stops at the first line that would cross the window's top edge.
// entries are in append order.
func (e *Engine) Log(entries []*logbuf.Entry, win geometry.Rect) []Op {
	var ops []Op

	lh := e.metrics.LineHeight
	pad := e.metrics.Padding
	bottom := win.Bottom()
	offset := 0.0

	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]

		rows := entry.LineCount()
		if rows == 0 {
			rows = 1
		}
		h := float64(rows) * lh

		// a trace is only drawn together with its message
		var trace string
		var th float64
		if entry.Severity().IsFailure() && entry.StackTrace() != "" {
			trace = PrefixTrace + entry.StackTrace()
			th = e.measurer.WrappedHeight(trace, win.W)
		}
		top := bottom - offset - th - pad - h
		if top < win.Y {
			break
		}

		if trace != "" {
			ops = append(ops, Op{
				Kind:  OpText,
				Rect:  geometry.Rect{X: win.X, Y: bottom - offset - th, W: win.W, H: th},
				Text:  trace,
				Color: e.palette.Alert,
				Entry: entry,
			})
			offset += th
		}

		prefix, c := e.style(entry)
		ops = append(ops, Op{
			Kind:  OpText,
			Rect:  geometry.Rect{X: win.X, Y: top, W: win.W, H: h},
			Text:  prefix + entry.Message(),
			Color: c,
			Bold:  true,
			Entry: entry,
		})

		if entry.LineCount() > 0 {
			offset += float64(entry.LineCount())*lh + lh + pad
		} else {
			offset += lh
		}
	}
	return ops
}
