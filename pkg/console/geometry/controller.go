package geometry

// Config sizes the overlay.
type Config struct {
	// Screen is the viewport size the percentage rule applies to.
	Screen Vec
	// WidthPercent and HeightPercent size the log window on Reset.
	WidthPercent  float64
	HeightPercent float64
	// Band is the height of the title bar and input field, and the side of
	// the square resize handle and close button.
	Band float64
	// MinSize is the floor applied per axis while resizing.
	MinSize Vec
	// PointerYUp is set when the host reports pointer positions with the
	// origin at the bottom-left. Points are flipped against Screen before use.
	PointerYUp bool
}

// Rects is a copy of every overlay rectangle
type Rects struct {
	Window       Rect
	Title        Rect
	Input        Rect
	ResizeHandle Rect
	Close        Rect
}

// dragGesture is the start snapshot of an active drag
type dragGesture struct {
	pointer Vec
	start   Rects
}

// resizeGesture is the start snapshot of an active resize
type resizeGesture struct {
	pointer Vec
	size    Vec
}

// Controller owns the overlay rectangles. The dependent rects are derived from
// the window rect except while a drag is active.
type Controller struct {
	cfg   Config
	rects Rects

	drag   *dragGesture
	resize *resizeGesture
}

// NewController creates a controller laid out by Reset.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.Reset()
	return c
}

// Rects returns the current rectangles
func (c *Controller) Rects() Rects { return c.rects }

// Config returns the active configuration
func (c *Controller) Config() Config { return c.cfg }

// SetScreen changes the viewport size used by the next Reset.
func (c *Controller) SetScreen(size Vec) {
	c.cfg.Screen = size
}

// Reset discards any gesture and lays every rect out from the viewport percentages.
func (c *Controller) Reset() {
	c.EndGestures()

	w := c.cfg.Screen.X / 100 * c.cfg.WidthPercent
	h := c.cfg.Screen.Y / 100 * c.cfg.HeightPercent
	c.rects = c.layout(Rect{X: 0, Y: c.cfg.Screen.Y - h - c.cfg.Band, W: w, H: h})
}

// SetWindowSize resizes the window in place and re-derives the dependent rects.
func (c *Controller) SetWindowSize(size Vec) {
	win := c.rects.Window
	win.W, win.H = size.X, size.Y
	c.rects = c.layout(c.clamp(win))
}

// SetWindowPosition moves the window and re-derives the dependent rects.
func (c *Controller) SetWindowPosition(pos Vec) {
	c.rects = c.layout(c.rects.Window.WithPos(pos))
}

// layout derives the dependent rects from a window rect: title above it,
// input field below it, resize handle after the input field and close button
// after the title.
func (c *Controller) layout(win Rect) Rects {
	band := c.cfg.Band
	title := Rect{X: win.X, Y: win.Y - band, W: win.W - band, H: band}
	input := Rect{X: win.X, Y: win.Bottom(), W: win.W - band, H: band}
	return Rects{
		Window:       win,
		Title:        title,
		Input:        input,
		ResizeHandle: Rect{X: input.Right(), Y: input.Y, W: band, H: band},
		Close:        Rect{X: title.Right(), Y: title.Y, W: band, H: band},
	}
}

// clamp applies the minimum size per axis
func (c *Controller) clamp(win Rect) Rect {
	if win.W < c.cfg.MinSize.X {
		win.W = c.cfg.MinSize.X
	}
	if win.H < c.cfg.MinSize.Y {
		win.H = c.cfg.MinSize.Y
	}
	return win
}

// ToScreen maps a host pointer position into the top-left space the rects live in.
func (c *Controller) ToScreen(p Vec) Vec {
	if c.cfg.PointerYUp {
		p.Y = c.cfg.Screen.Y - p.Y
	}
	return p
}

// Dragging reports whether a drag gesture is active
func (c *Controller) Dragging() bool { return c.drag != nil }

// Resizing reports whether a resize gesture is active
func (c *Controller) Resizing() bool { return c.resize != nil }

// PointerDown starts a drag over the title bar or a resize over the handle.
// p is in host coordinates.
func (c *Controller) PointerDown(p Vec) {
	if c.drag != nil || c.resize != nil {
		return
	}
	p = c.ToScreen(p)
	switch {
	case c.rects.Title.Contains(p):
		c.drag = &dragGesture{pointer: p, start: c.rects}
	case c.rects.ResizeHandle.Contains(p):
		c.resize = &resizeGesture{pointer: p, size: c.rects.Window.Size()}
	}
}

// PointerUp ends any active gesture wherever the pointer is.
func (c *Controller) PointerUp() {
	c.EndGestures()
}

// EndGestures drops the start snapshots of both gestures
func (c *Controller) EndGestures() {
	c.drag = nil
	c.resize = nil
}

// Update advances the active gesture to pointer p, in host coordinates.
func (c *Controller) Update(p Vec) {
	p = c.ToScreen(p)
	switch {
	case c.drag != nil:
		d := c.drag.pointer.Sub(p)
		s := c.drag.start
		c.rects = Rects{
			Window:       s.Window.WithPos(s.Window.Pos().Sub(d)),
			Title:        s.Title.WithPos(s.Title.Pos().Sub(d)),
			Input:        s.Input.WithPos(s.Input.Pos().Sub(d)),
			ResizeHandle: s.ResizeHandle.WithPos(s.ResizeHandle.Pos().Sub(d)),
			Close:        s.Close.WithPos(s.Close.Pos().Sub(d)),
		}
	case c.resize != nil:
		d := c.resize.pointer.Sub(p)
		size := c.resize.size.Sub(d)
		win := c.rects.Window
		win.W, win.H = size.X, size.Y
		c.rects = c.layout(c.clamp(win))
	}
}
