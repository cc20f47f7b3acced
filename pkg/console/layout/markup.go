package layout

import "regexp"

// markupTags matches the rich-text tags command output may carry:
// <b>, <i>, <size=N> and <color=#rrggbb>, plus their closing forms.
var markupTags = regexp.MustCompile(`</?(?:b|i|size|color)(?:=[^>]*)?>`)

// StripMarkup removes rich-text tags, leaving the visible text.
func StripMarkup(s string) string {
	return markupTags.ReplaceAllString(s, "")
}
