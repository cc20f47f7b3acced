package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellMeasurer measures text on a fixed character grid, as a terminal does.
// Wide runes take two cells.
type CellMeasurer struct {
	CellWidth  float64
	LineHeight float64
}

// Advance returns the width of text in cells times CellWidth
func (m CellMeasurer) Advance(text string) float64 {
	return float64(runewidth.StringWidth(StripMarkup(text))) * m.CellWidth
}

// Wrap breaks text into lines no wider than width
func (m CellMeasurer) Wrap(text string, width float64) []string {
	cols := int(width / m.CellWidth)
	if cols < 1 {
		cols = 1
	}
	var lines []string
	for _, line := range strings.Split(StripMarkup(text), "\n") {
		lines = append(lines, strings.Split(runewidth.Wrap(line, cols), "\n")...)
	}
	return lines
}

// WrappedHeight returns the number of wrapped lines times LineHeight
func (m CellMeasurer) WrappedHeight(text string, width float64) float64 {
	return float64(len(m.Wrap(text, width))) * m.LineHeight
}

// WrapWords greedily breaks text into lines no wider than width, as measured
// by advance. Words longer than a line are split between runes. Explicit
// newlines are kept.
func WrapWords(text string, width float64, advance func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Split(para, " ") {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if advance(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			line = ""
			for _, r := range word {
				if line != "" && advance(line+string(r)) > width {
					lines = append(lines, line)
					line = ""
				}
				line += string(r)
			}
		}
		lines = append(lines, line)
	}
	return lines
}
