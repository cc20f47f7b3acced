package layout

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func runeAdvance(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"the quick", "brown fox"}, WrapWords("the quick brown fox", 10, runeAdvance))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, WrapWords("abcdefghij", 4, runeAdvance))
	assert.Equal(t, []string{"a", "", "b"}, WrapWords("a\n\nb", 10, runeAdvance))
	assert.Equal(t, []string{""}, WrapWords("", 10, runeAdvance))
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "about About the console",
		StripMarkup("<b>about</b><size=11><color=#7788aa> About the console</color></size>"))
	assert.Equal(t, "a < b > c", StripMarkup("a < b > c"))
}

func TestCellMeasurer_IgnoresMarkup(t *testing.T) {
	m := CellMeasurer{CellWidth: 2, LineHeight: 1}
	assert.Equal(t, 10.0, m.Advance("<b>hello</b>"))
}
