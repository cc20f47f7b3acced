package ebiten

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"devconsole/pkg/console/geometry"
)

// painter draws console ops onto one frame's screen image.
type painter struct {
	screen *ebiten.Image
	fonts  *Fonts
}

func (p *painter) FillRect(r geometry.Rect, c color.Color) {
	vector.DrawFilledRect(p.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawText wraps text to r's width and draws it top-down, clipped to r.
func (p *painter) DrawText(r geometry.Rect, s string, c color.Color, bold bool) {
	bounds := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	).Intersect(p.screen.Bounds())
	if bounds.Empty() {
		return
	}
	dst := p.screen.SubImage(bounds).(*ebiten.Image)

	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = p.fonts.LineHeight()

	text.Draw(dst, strings.Join(p.fonts.Wrap(s, r.W), "\n"), p.fonts.getFace(bold), op)
}
