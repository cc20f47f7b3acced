package ebiten

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"devconsole/pkg/console"
)

// background fills the window behind the overlay
var background = color.RGBA{26, 26, 46, 255}

// EbitenRenderer runs a console inside an Ebiten window.
type EbitenRenderer struct {
	console *console.Console
	fonts   *Fonts
	source  *source

	windowWidth  int
	windowHeight int

	cursor console.Cursor

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a renderer for c. fonts must be the Measurer c was built with.
func New(c *console.Console, fonts *Fonts) *EbitenRenderer {
	cfg := c.Config()
	return &EbitenRenderer{
		console:      c,
		fonts:        fonts,
		windowWidth:  cfg.ScreenWidth,
		windowHeight: cfg.ScreenHeight,
		cursor:       console.CursorDefault,
	}
}

// Init sets up the window and resolves key bindings
func (e *EbitenRenderer) Init() error {
	e.source = newSource(e.console.Bindings())
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Developer Console"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop; it returns nil after the quit command.
func (e *EbitenRenderer) Run() error {
	if e.source == nil {
		if err := e.Init(); err != nil {
			return err
		}
	}
	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update runs one console tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.source.poll()
	e.console.Tick(e.source, time.Now())
	e.applyCursor(e.console.Cursor())

	if e.console.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the overlay (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	e.console.Draw(&painter{screen: screen, fonts: e.fonts})
}

// Layout keeps the logical screen the size of the window and re-lays the
// console out when the window is resized (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
		e.console.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return e.windowWidth, e.windowHeight
}

// applyCursor maps the console's cursor hint to an Ebiten cursor shape.
// Platforms without a shape fall back to the default cursor on their own.
func (e *EbitenRenderer) applyCursor(c console.Cursor) {
	if c == e.cursor {
		return
	}
	e.cursor = c
	ebiten.SetCursorShape(cursorShape(c))
}

func cursorShape(c console.Cursor) ebiten.CursorShapeType {
	switch c {
	case console.CursorText:
		return ebiten.CursorShapeText
	case console.CursorPointer:
		return ebiten.CursorShapePointer
	case console.CursorMove:
		return ebiten.CursorShapeMove
	case console.CursorResize:
		return ebiten.CursorShapeNWSEResize
	default:
		return ebiten.CursorShapeDefault
	}
}
