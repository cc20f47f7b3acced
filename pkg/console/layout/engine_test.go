package layout

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/console/geometry"
	"devconsole/pkg/console/logbuf"
)

var (
	testText  = color.RGBA{217, 217, 217, 255}
	testAlert = color.RGBA{235, 115, 115, 255}
)

func newTestEngine() *Engine {
	return NewEngine(
		Metrics{LineHeight: 10, Padding: 2},
		Palette{Text: testText, Alert: testAlert},
		CellMeasurer{CellWidth: 5, LineHeight: 10},
	)
}

func fillBuffer(n int) *logbuf.Buffer {
	b := logbuf.New(0)
	for i := 0; i < n; i++ {
		b.Append(logbuf.SeverityInfo, fmt.Sprintf("entry %d", i), "")
	}
	return b
}

func TestLog_AllEntriesFit(t *testing.T) {
	b := fillBuffer(5)
	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 100})

	require.Len(t, ops, 5)
	for i, op := range ops {
		assert.Equal(t, fmt.Sprintf("- entry %d", 4-i), op.Text, "ops are newest first")
		if i > 0 {
			assert.Less(t, op.Rect.Y, ops[i-1].Rect.Y, "older entries are drawn above newer ones")
		}
	}
	assert.Equal(t, 100.0-2-10, ops[0].Rect.Y, "newest entry sits on the bottom row")
}

func TestLog_OnlyMostRecentFit(t *testing.T) {
	b := fillBuffer(5)
	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 32})

	require.Len(t, ops, 3)
	assert.Equal(t, "- entry 4", ops[0].Text)
	assert.Equal(t, "- entry 3", ops[1].Text)
	assert.Equal(t, "- entry 2", ops[2].Text)
	assert.Equal(t, 0.0, ops[2].Rect.Y)
	assert.Equal(t, 5, b.Len(), "undrawn entries stay in storage")
}

func TestLog_WindowOffset(t *testing.T) {
	b := fillBuffer(2)
	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{X: 30, Y: 50, W: 200, H: 40})

	require.Len(t, ops, 2)
	assert.Equal(t, geometry.Rect{X: 30, Y: 78, W: 200, H: 10}, ops[0].Rect)
	assert.Equal(t, geometry.Rect{X: 30, Y: 68, W: 200, H: 10}, ops[1].Rect)
}

func TestLog_MultiLineSpacing(t *testing.T) {
	b := logbuf.New(0)
	b.Append(logbuf.SeverityInfo, "a", "")
	b.Append(logbuf.SeverityInfo, "x\ny\nz", "")

	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 200})
	require.Len(t, ops, 2)

	assert.Equal(t, geometry.Rect{Y: 168, W: 200, H: 30}, ops[0].Rect)
	// three rows, then one blank row plus padding
	assert.Equal(t, 200.0-42-2-10, ops[1].Rect.Y)
}

func TestLog_StackTraceBelowMessage(t *testing.T) {
	b := logbuf.New(0)
	b.Append(logbuf.SeverityError, "boom", "t1\nt2")

	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 200})
	require.Len(t, ops, 2)

	trace, msg := ops[0], ops[1]
	assert.Equal(t, "[] t1\nt2", trace.Text)
	assert.Equal(t, testAlert, trace.Color)
	assert.Equal(t, geometry.Rect{Y: 180, W: 200, H: 20}, trace.Rect)

	assert.Equal(t, "{!!} boom", msg.Text)
	assert.Equal(t, testAlert, msg.Color)
	assert.Equal(t, 168.0, msg.Rect.Y)
}

func TestLog_StackTraceTooTallStops(t *testing.T) {
	b := logbuf.New(0)
	b.Append(logbuf.SeverityInfo, "older", "")
	b.Append(logbuf.SeverityException, "boom", "1\n2\n3\n4\n5")

	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 40})
	assert.Empty(t, ops)
}

func TestLog_TraceNeverDrawnWithoutMessage(t *testing.T) {
	b := logbuf.New(0)
	b.Append(logbuf.SeverityError, "boom", "frame1")

	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 15})
	assert.Empty(t, ops, "trace fits but message does not")

	b.Append(logbuf.SeverityInfo, "newest", "")
	ops = newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 15})
	require.Len(t, ops, 1)
	assert.Equal(t, "- newest", ops[0].Text)
}

func TestLog_WarningWithoutTraceSection(t *testing.T) {
	b := logbuf.New(0)
	b.Append(logbuf.SeverityWarning, "careful", "ignored trace")

	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 200})
	require.Len(t, ops, 1)
	assert.Equal(t, "|!| careful", ops[0].Text)
	assert.Equal(t, testAlert, ops[0].Color)
}

func TestLog_InfoColors(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	b := logbuf.New(0)
	b.Append(logbuf.SeverityInfo, "plain", "")
	b.AppendColored(logbuf.SeverityInfo, "green", "", green)

	ops := newTestEngine().Log(b.Snapshot(), geometry.Rect{W: 200, H: 200})
	require.Len(t, ops, 2)
	assert.Equal(t, green, ops[0].Color)
	assert.Equal(t, testText, ops[1].Color)
	assert.True(t, ops[0].Bold)
}

type recordingPainter struct {
	fills []geometry.Rect
	texts []string
}

func (p *recordingPainter) FillRect(r geometry.Rect, _ color.Color) { p.fills = append(p.fills, r) }
func (p *recordingPainter) DrawText(_ geometry.Rect, text string, _ color.Color, _ bool) {
	p.texts = append(p.texts, text)
}

func TestChrome_AlwaysDrawn(t *testing.T) {
	g := geometry.NewController(geometry.Config{
		Screen: geometry.Vec{X: 400, Y: 300}, WidthPercent: 50, HeightPercent: 50, Band: 10,
	})
	inactive := color.RGBA{1, 1, 1, 255}
	active := color.RGBA{2, 2, 2, 255}
	style := ChromeStyle{Title: "Console", InputActive: active, InputInactive: inactive}

	ops := newTestEngine().Chrome(g.Rects(), "help", true, style)
	require.Len(t, ops, 8)
	assert.Equal(t, active, ops[5].Color)

	p := &recordingPainter{}
	PaintAll(p, ops)
	assert.Equal(t, []string{"Console", "X", "help"}, p.texts)
	assert.Len(t, p.fills, 5)

	ops = newTestEngine().Chrome(g.Rects(), "", false, style)
	assert.Equal(t, inactive, ops[5].Color)
}

func TestCellMeasurer_Wrap(t *testing.T) {
	m := CellMeasurer{CellWidth: 1, LineHeight: 1}
	assert.Equal(t, []string{"abcd", "ef"}, m.Wrap("abcdef", 4))
	assert.Equal(t, 3.0, m.WrappedHeight("abcdef\nx", 4))
	assert.Equal(t, 4.0, m.Advance("世界"))
}
