// Package tui runs the developer console as a line REPL in a terminal.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"devconsole/pkg/console"
	"devconsole/pkg/console/geometry"
	"devconsole/pkg/console/layout"
	"devconsole/pkg/console/logbuf"
	"devconsole/pkg/engine/input"
	"devconsole/pkg/engine/terminal"
)

// promptText is printed before every input line
const promptText = "> "

// reservedRows keeps the prompt and one spare line below a full redraw
const reservedRows = 2

// TUIRenderer is the terminal-based console front-end
type TUIRenderer struct {
	console *console.Console
	in      *os.File
	out     io.Writer
	reader  *input.LineReader

	engine *layout.Engine
	width  int
	height int

	colorTitle color.Style

	// last is the newest entry already printed
	last *logbuf.Entry
}

// New creates a terminal renderer for c reading from in and writing to out
func New(c *console.Console, in *os.File, out io.Writer) *TUIRenderer {
	return &TUIRenderer{console: c, in: in, out: out}
}

// Init sizes the viewport from the terminal and opens the console
func (t *TUIRenderer) Init() error {
	t.reader = input.NewLineReader(t.in, t.out)
	t.width, t.height = terminal.WriterSize(t.out)

	palette, err := t.console.Config().Palette()
	if err != nil {
		return err
	}
	t.engine = layout.NewEngine(
		layout.Metrics{LineHeight: 1},
		layout.Palette{Text: palette.Text, Alert: palette.Alert},
		layout.CellMeasurer{CellWidth: 1, LineHeight: 1},
	)
	t.colorTitle = color.Style{color.FgGray, color.OpBold}

	t.console.Enable()
	t.console.SetEnabled(true)
	return nil
}

// Run reads lines until EOF, Ctrl+C or the quit command
func (t *TUIRenderer) Run() error {
	if t.engine == nil {
		if err := t.Init(); err != nil {
			return err
		}
	}
	fmt.Fprintln(t.out, t.colorTitle.Sprint(gotext.Get("Developer Console")))

	for {
		t.render()
		if t.console.QuitRequested() {
			return nil
		}

		frame, err := t.next()
		if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		t.console.Tick(frame, time.Now())
	}
}

// next reads one event and turns it into a console input frame
func (t *TUIRenderer) next() (input.Frame, error) {
	bindings := t.console.Bindings()
	p := t.console.Prompt()

	if !t.reader.Interactive() {
		line, err := t.reader.ReadLine()
		if err != nil {
			return input.Frame{}, err
		}
		p.SetBuffer(line)
		return input.Frame{KeysUp: []input.Action{input.ActionSubmit}}, nil
	}

	fmt.Fprint(t.out, "\r\033[K"+promptText)
	ev, err := t.reader.ReadEvent(p.Buffer())
	if err != nil {
		return input.Frame{}, err
	}
	p.SetBuffer(ev.Text)
	if ev.Code != "enter" {
		// history keys redraw the prompt line in place
		fmt.Fprint(t.out, "\r\033[K")
	}
	return input.Frame{KeysUp: []input.Action{bindings.Action(ev.Code)}}, nil
}

// render prints the entries appended since the last call. When the buffer
// was cleared or the last printed entry was evicted, the screen is redrawn
// with as many of the newest entries as fit the terminal.
func (t *TUIRenderer) render() {
	entries := t.console.Buffer().Snapshot()
	start := -1
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i] == t.last {
			start = i + 1
			break
		}
	}

	var ops []layout.Op
	if start < 0 {
		if t.last != nil {
			fmt.Fprint(t.out, "\033[H\033[2J")
		}
		rows := float64(t.height - reservedRows)
		ops = t.engine.Log(entries, geometry.Rect{W: float64(t.width), H: rows})
	} else {
		ops = t.engine.Log(entries[start:], geometry.Rect{W: float64(t.width), H: float64(len(entries)) * 1e6})
	}
	t.last = nil
	if len(entries) > 0 {
		t.last = entries[len(entries)-1]
	}

	// ops come newest first
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		fmt.Fprintln(t.out, color.RGB(op.Color.R, op.Color.G, op.Color.B).Sprint(layout.StripMarkup(op.Text)))
	}
}
