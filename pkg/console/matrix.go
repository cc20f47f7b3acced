package console

import (
	"math/rand"
	"strings"
	"time"

	"devconsole/pkg/console/geometry"
)

var matrixTokens = []string{
	"hack", "b", "c", "d", "e", "f", "g", "{", "I", "j", "k", "l", "m", "}", "o", "p",
	"q", "r", "s", "t", "u", "\n", "w", "x", "y", "z",
	"0", "1", "2", "-", "4", "5", "6", "7", "8", "9", "-", " ", "HELP", "!", "NEO", "%", "#", "RABBIT",
}

// matrix is the rain of random tokens that overwrites the log view.
type matrix struct {
	ticker   *Ticker
	rng      *rand.Rand
	fontSize float64
}

func newMatrix(interval time.Duration, fontSize float64, rng *rand.Rand) *matrix {
	return &matrix{ticker: NewTicker(interval), rng: rng, fontSize: fontSize}
}

// frame builds one screenful of tokens for win. rowsDivisor halves the rows
// for the repeating frames, which are redrawn too often to fill the window.
func (m *matrix) frame(win geometry.Rect, rowsDivisor int) string {
	rows := int(win.H/m.fontSize) / rowsDivisor
	cols := int(win.W / m.fontSize)

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.WriteString(matrixTokens[m.rng.Intn(len(matrixTokens))])
		}
	}
	return b.String()
}
