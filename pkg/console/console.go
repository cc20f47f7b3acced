// Package console is the developer console overlay: it collects log lines,
// dispatches typed commands and lays the window out for a host renderer.
package console

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/leonelquinteros/gotext"

	"devconsole/pkg/console/command"
	"devconsole/pkg/console/config"
	"devconsole/pkg/console/geometry"
	"devconsole/pkg/console/layout"
	"devconsole/pkg/console/logbuf"
	"devconsole/pkg/console/prompt"
	"devconsole/pkg/engine/input"
)

// Cursor is the pointer shape the console asks the host for.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorText
	CursorPointer
	CursorMove
	CursorResize
)

// Options are the host collaborators handed to New.
type Options struct {
	// Measurer measures text in the host's font. Required.
	Measurer layout.Measurer
	// Clipboard backs paste; nil disables it.
	Clipboard prompt.Clipboard
	// Modules are the host's command sets, discovered after the built-ins.
	Modules []command.Module
	// Rand seeds the matrix animation; nil uses a time-seeded source.
	Rand *rand.Rand
}

// Console is one developer console. All methods except Receive, Writer and
// the logging wrappers must be called from the host's tick goroutine.
type Console struct {
	cfg     config.Config
	palette config.Palette

	buffer   *logbuf.Buffer
	registry *command.Registry
	prompt   *prompt.Controller
	geometry *geometry.Controller
	layout   *layout.Engine
	bindings *input.Bindings
	matrix   *matrix

	modules []command.Module

	cursor       Cursor
	pressInClose bool
	now          time.Time

	// Touched from log producers outside the tick.
	forceDisabled atomic.Bool
	openRequested atomic.Bool
	quitRequested atomic.Bool
}

// New builds a console from cfg and discovers the built-in and host commands.
func New(cfg config.Config, opts Options) (*Console, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Console{
		cfg:      cfg,
		palette:  palette,
		buffer:   logbuf.New(cfg.MaxEntries),
		bindings: input.DefaultBindings(cfg.ToggleKey),
		matrix:   newMatrix(cfg.MatrixInterval, cfg.FontSize, rng),
	}
	c.registry = command.NewRegistry(c.buffer, palette.Success, palette.Failure)
	c.prompt = prompt.New(c.registry, opts.Clipboard, cfg.FilteredChars)
	c.geometry = geometry.NewController(geometry.Config{
		Screen:        geometry.Vec{X: float64(cfg.ScreenWidth), Y: float64(cfg.ScreenHeight)},
		WidthPercent:  cfg.WidthPercent,
		HeightPercent: cfg.HeightPercent,
		Band:          cfg.Band(),
		MinSize:       geometry.Vec{X: cfg.MinWidth, Y: cfg.MinHeight},
		PointerYUp:    cfg.PointerYUp,
	})
	c.layout = layout.NewEngine(
		layout.Metrics{LineHeight: cfg.FontSize, Padding: cfg.LinePadding},
		layout.Palette{Text: palette.Text, Alert: palette.Alert},
		opts.Measurer,
	)

	c.modules = append([]command.Module{c.builtins()}, opts.Modules...)
	c.registry.Refresh(c.modules...)
	return c, nil
}

// Config returns the configuration the console was built with
func (c *Console) Config() config.Config { return c.cfg }

// Bindings returns the key bindings hosts translate their input with.
func (c *Console) Bindings() *input.Bindings { return c.bindings }

// Buffer returns the log buffer
func (c *Console) Buffer() *logbuf.Buffer { return c.buffer }

// Registry returns the command registry
func (c *Console) Registry() *command.Registry { return c.registry }

// Prompt returns the input controller
func (c *Console) Prompt() *prompt.Controller { return c.prompt }

// Geometry returns the window geometry controller
func (c *Console) Geometry() *geometry.Controller { return c.geometry }

// Enabled reports whether the overlay is open
func (c *Console) Enabled() bool { return c.prompt.Enabled() }

// Cursor returns the pointer shape computed by the last Tick
func (c *Console) Cursor() Cursor { return c.cursor }

// QuitRequested reports whether the quit command ran
func (c *Console) QuitRequested() bool { return c.quitRequested.Load() }

// RequestQuit asks the host to terminate at its next opportunity.
func (c *Console) RequestQuit() { c.quitRequested.Store(true) }

// RefreshCommands re-discovers the built-ins and the given host modules,
// replacing the previous command set.
func (c *Console) RefreshCommands(modules ...command.Module) {
	c.modules = append([]command.Module{c.builtins()}, modules...)
	c.registry.Refresh(c.modules...)
}

// SetEnabled opens or closes the overlay. Closing drops any gesture in
// progress and restores the default cursor.
func (c *Console) SetEnabled(enabled bool) {
	if enabled && c.forceDisabled.Load() {
		return
	}
	c.prompt.SetEnabled(enabled)
	c.pressInClose = false
	if !enabled {
		c.geometry.EndGestures()
		c.cursor = CursorDefault
	}
}

// Disable force-closes the console: the toggle key stops working and
// received log lines are dropped until Enable is called.
func (c *Console) Disable() {
	c.forceDisabled.Store(true)
	c.SetEnabled(false)
}

// Enable lifts Disable. The overlay stays closed until toggled.
func (c *Console) Enable() {
	c.forceDisabled.Store(false)
}

// ForceDisabled reports whether Disable is in effect
func (c *Console) ForceDisabled() bool { return c.forceDisabled.Load() }

// Tick runs one frame of console logic against the host's input.
func (c *Console) Tick(src input.Source, now time.Time) {
	c.now = now

	if c.openRequested.Swap(false) && !c.Enabled() {
		c.SetEnabled(true)
	}
	toggled := src.Released(input.ActionToggle)
	if toggled && !c.forceDisabled.Load() {
		c.SetEnabled(!c.Enabled())
	}

	if c.Enabled() {
		c.pointer(src)
		if toggled || src.Held(input.ActionToggle) {
			// the toggle key's own character arrives while it is down
			src = withoutChars{src}
		}
		c.prompt.Update(src)
	}

	if c.matrix.ticker.Advance(now) {
		c.buffer.Clear()
		c.buffer.AppendColored(logbuf.SeverityInfo, c.matrix.frame(c.geometry.Rects().Window, 2), "", c.palette.Matrix)
	}
}

// pointer routes button edges to the gestures, focus and close button.
func (c *Console) pointer(src input.Source) {
	x, y := src.Pointer()
	hp := geometry.Vec{X: x, Y: y}
	p := c.geometry.ToScreen(hp)

	if src.PointerPressed() {
		c.pressInClose = c.geometry.Rects().Close.Contains(p)
		c.geometry.PointerDown(hp)
	}
	c.geometry.Update(hp)

	if src.PointerReleased() {
		r := c.geometry.Rects()
		c.geometry.PointerUp()
		if c.pressInClose && r.Close.Contains(p) {
			c.SetEnabled(false)
			return
		}
		c.pressInClose = false
		c.prompt.PointerReleased(r.Input.Contains(p))
	}

	c.cursor = c.cursorAt(p)
}

// withoutChars hides the typed text of a tick
type withoutChars struct {
	input.Source
}

func (withoutChars) Chars() []rune { return nil }

// cursorAt picks the pointer shape for p. An active gesture keeps its shape
// even after the pointer leaves the rect that started it.
func (c *Console) cursorAt(p geometry.Vec) Cursor {
	r := c.geometry.Rects()
	switch {
	case c.geometry.Resizing() || r.ResizeHandle.Contains(p):
		return CursorResize
	case c.geometry.Dragging() || r.Title.Contains(p):
		return CursorMove
	case r.Close.Contains(p):
		return CursorPointer
	case r.Input.Contains(p):
		return CursorText
	}
	return CursorDefault
}

// Ops schedules this frame's draw calls: the chrome, then the visible log
// lines. It returns nil while the overlay is closed.
func (c *Console) Ops() []layout.Op {
	if !c.Enabled() {
		return nil
	}
	rects := c.geometry.Rects()
	ops := c.layout.Chrome(rects, c.prompt.Buffer(), c.prompt.Typing(), layout.ChromeStyle{
		Title:          gotext.Get("Developer Console"),
		WindowBack:     c.palette.WindowBack,
		TitleBar:       c.palette.TitleBar,
		CloseButton:    c.palette.CloseButton,
		InputActive:    c.palette.InputActive,
		InputInactive:  c.palette.InputInactive,
		ResizeHandle:   c.palette.TitleBar,
		Label:          c.palette.InputText,
		InputText:      c.palette.InputText,
		InputTextInset: c.cfg.LinePadding * 2,
	})
	return append(ops, c.layout.Log(c.buffer.Snapshot(), rects.Window)...)
}

// Draw paints the overlay on p
func (c *Console) Draw(p layout.Painter) {
	layout.PaintAll(p, c.Ops())
}

// Resize tells the console the host viewport changed size; the window is
// laid out again from the percentage rule.
func (c *Console) Resize(width, height float64) {
	c.geometry.SetScreen(geometry.Vec{X: width, Y: height})
	c.geometry.Reset()
}
