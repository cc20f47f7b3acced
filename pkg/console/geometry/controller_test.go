package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Screen:        Vec{800, 600},
		WidthPercent:  50,
		HeightPercent: 60,
		Band:          14,
		MinSize:       Vec{100, 50},
	}
}

// assertDerived checks that every dependent rect follows the fixed layout rules.
func assertDerived(t *testing.T, r Rects, band float64) {
	t.Helper()
	w := r.Window
	assert.Equal(t, Rect{w.X, w.Y - band, w.W - band, band}, r.Title)
	assert.Equal(t, Rect{w.X, w.Y + w.H, w.W - band, band}, r.Input)
	assert.Equal(t, Rect{r.Input.X + r.Input.W, r.Input.Y, band, band}, r.ResizeHandle)
	assert.Equal(t, Rect{r.Title.X + r.Title.W, r.Title.Y, band, band}, r.Close)
}

func TestReset_PercentLayout(t *testing.T) {
	c := NewController(testConfig())
	r := c.Rects()

	assert.Equal(t, Rect{0, 600 - 360 - 14, 400, 360}, r.Window)
	assert.Equal(t, 600-14.0, r.Input.Y, "input field sits on the bottom edge of the screen")
	assertDerived(t, r, 14)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{10, 10, 5, 5}
	assert.True(t, r.Contains(Vec{10, 10}))
	assert.True(t, r.Contains(Vec{14.9, 14.9}))
	assert.False(t, r.Contains(Vec{15, 12}))
	assert.False(t, r.Contains(Vec{9, 12}))
}

func TestDrag_MovesAllRects(t *testing.T) {
	c := NewController(testConfig())
	before := c.Rects()
	grab := Vec{before.Title.X + 5, before.Title.Y + 5}

	c.PointerDown(grab)
	require.True(t, c.Dragging())
	require.False(t, c.Resizing())

	c.Update(grab.Add(Vec{30, -20}))
	after := c.Rects()
	assert.Equal(t, before.Window.X+30, after.Window.X)
	assert.Equal(t, before.Window.Y-20, after.Window.Y)
	assert.Equal(t, before.Window.Size(), after.Window.Size())
	assertDerived(t, after, 14)

	c.PointerUp()
	assert.False(t, c.Dragging())

	c.Update(grab.Add(Vec{300, 300}))
	assert.Equal(t, after, c.Rects(), "no gesture, no movement")
}

func TestDrag_PointerYUpFlipsAgainstScreen(t *testing.T) {
	cfg := testConfig()
	cfg.PointerYUp = true
	c := NewController(cfg)
	before := c.Rects()

	// title centre reported with the origin at the bottom-left
	grab := Vec{before.Title.X + 5, 600 - (before.Title.Y + 7)}
	assert.Equal(t, Vec{before.Title.X + 5, before.Title.Y + 7}, c.ToScreen(grab))

	c.PointerDown(grab)
	require.True(t, c.Dragging())

	// moving up in y-up space moves the window up on screen
	c.Update(grab.Add(Vec{0, 10}))
	assert.Equal(t, before.Window.Y-10, c.Rects().Window.Y)
	assertDerived(t, c.Rects(), 14)
}

func TestResize_PointerYUpHitsHandle(t *testing.T) {
	cfg := testConfig()
	cfg.PointerYUp = true
	c := NewController(cfg)
	h := c.Rects().ResizeHandle

	c.PointerDown(Vec{h.X + 1, 600 - (h.Y + 1)})
	require.True(t, c.Resizing())

	// y-up pointer moving down grows the window downwards on screen
	c.Update(Vec{h.X + 21, 600 - (h.Y + 11)})
	assert.Equal(t, Vec{420, 370}, c.Rects().Window.Size())
}

func TestToScreen_TopLeftIsIdentity(t *testing.T) {
	c := NewController(testConfig())
	assert.Equal(t, Vec{3, 4}, c.ToScreen(Vec{3, 4}))
}

func TestResize_GrowsAndRelayouts(t *testing.T) {
	c := NewController(testConfig())
	before := c.Rects()
	grab := Vec{before.ResizeHandle.X + 1, before.ResizeHandle.Y + 1}

	c.PointerDown(grab)
	require.True(t, c.Resizing())
	c.Update(grab.Add(Vec{50, 25}))

	after := c.Rects()
	assert.Equal(t, Vec{450, 385}, after.Window.Size())
	assert.Equal(t, before.Window.Pos(), after.Window.Pos())
	assertDerived(t, after, 14)
}

func TestResize_ClampsToMinimum(t *testing.T) {
	c := NewController(testConfig())
	c.SetWindowSize(Vec{200, 100})
	r := c.Rects()
	grab := Vec{r.ResizeHandle.X + 1, r.ResizeHandle.Y + 1}

	c.PointerDown(grab)
	// would compute (40, 30)
	c.Update(grab.Sub(Vec{160, 70}))

	assert.Equal(t, Vec{100, 50}, c.Rects().Window.Size())
	assertDerived(t, c.Rects(), 14)
}

func TestResize_ClampsAxesIndependently(t *testing.T) {
	c := NewController(testConfig())
	c.SetWindowSize(Vec{200, 100})
	r := c.Rects()
	grab := Vec{r.ResizeHandle.X + 1, r.ResizeHandle.Y + 1}

	c.PointerDown(grab)
	c.Update(grab.Add(Vec{-160, 40}))

	assert.Equal(t, Vec{100, 140}, c.Rects().Window.Size())
}

func TestPointerDown_OutsideStartsNothing(t *testing.T) {
	c := NewController(testConfig())
	c.PointerDown(Vec{790, 5})
	assert.False(t, c.Dragging())
	assert.False(t, c.Resizing())
}

func TestReset_DiscardsGestureAndHistory(t *testing.T) {
	c := NewController(testConfig())
	initial := c.Rects()
	grab := Vec{initial.Title.X + 1, initial.Title.Y + 1}
	c.PointerDown(grab)
	c.Update(grab.Add(Vec{100, 100}))

	c.Reset()
	assert.False(t, c.Dragging())
	assert.Equal(t, initial, c.Rects())
}

func TestSetWindowPosition_RederivesRects(t *testing.T) {
	c := NewController(testConfig())
	c.SetWindowPosition(Vec{20, 40})
	assert.Equal(t, Vec{20, 40}, c.Rects().Window.Pos())
	assertDerived(t, c.Rects(), 14)
}
