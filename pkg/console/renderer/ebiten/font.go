// Package ebiten provides an Ebiten-based graphical host for the developer console.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"devconsole/pkg/console/layout"
)

// Fonts holds the console's monospace faces and measures text with them.
// It satisfies layout.Measurer.
type Fonts struct {
	monoFontSource     *text.GoTextFaceSource
	monoBoldFontSource *text.GoTextFaceSource

	size       float64
	lineHeight float64

	// Cached faces (recreated when the size changes)
	cachedSize     float64
	cachedFace     *text.GoTextFace
	cachedBoldFace *text.GoTextFace
}

// LoadFonts parses the embedded Go Mono faces
func LoadFonts(size, lineHeight float64) (*Fonts, error) {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono bold font: %w", err)
	}
	return &Fonts{
		monoFontSource:     mono,
		monoBoldFontSource: bold,
		size:               size,
		lineHeight:         lineHeight,
	}, nil
}

// LineHeight is the distance between wrapped lines
func (f *Fonts) LineHeight() float64 { return f.lineHeight }

// getFace returns a cached face, bold or regular, at the current size
func (f *Fonts) getFace(bold bool) *text.GoTextFace {
	if f.cachedFace == nil || f.cachedSize != f.size {
		f.cachedSize = f.size
		f.cachedFace = &text.GoTextFace{Source: f.monoFontSource, Size: f.size}
		f.cachedBoldFace = &text.GoTextFace{Source: f.monoBoldFontSource, Size: f.size}
	}
	if bold {
		return f.cachedBoldFace
	}
	return f.cachedFace
}

// Advance returns the width of text on one line, ignoring markup.
func (f *Fonts) Advance(s string) float64 {
	return text.Advance(layout.StripMarkup(s), f.getFace(false))
}

// Wrap breaks s into lines no wider than width
func (f *Fonts) Wrap(s string, width float64) []string {
	face := f.getFace(false)
	return layout.WrapWords(layout.StripMarkup(s), width, func(line string) float64 {
		return text.Advance(line, face)
	})
}

// WrappedHeight returns the height of s wrapped to width
func (f *Fonts) WrappedHeight(s string, width float64) float64 {
	return float64(len(f.Wrap(s, width))) * f.lineHeight
}
