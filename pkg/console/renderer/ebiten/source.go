package ebiten

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"devconsole/pkg/engine/input"
)

// keyBinding is one resolved code: a key and whether Ctrl must be down
type keyBinding struct {
	key  ebiten.Key
	ctrl bool
}

// source adapts Ebiten's keyboard and mouse state to input.Source.
type source struct {
	keys  map[input.Action][]keyBinding
	chars []rune
}

// newSource resolves every bound code Ebiten knows by name. Terminal-only
// codes such as "arrow_up" do not resolve and are skipped.
func newSource(b *input.Bindings) *source {
	s := &source{keys: make(map[input.Action][]keyBinding)}
	actions := []input.Action{
		input.ActionToggle, input.ActionSubmit, input.ActionDelete,
		input.ActionHistoryUp, input.ActionHistoryDown, input.ActionPaste,
	}
	for _, a := range actions {
		for _, code := range b.CodesFor(a) {
			name, ctrl := strings.CutPrefix(code, "ctrl+")
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				continue
			}
			s.keys[a] = append(s.keys[a], keyBinding{key: k, ctrl: ctrl})
		}
	}
	if len(s.keys[input.ActionToggle]) == 0 {
		log.Printf("console: toggle key %v is not a known key, the console can only be opened from code", b.CodesFor(input.ActionToggle))
	}
	return s
}

// poll captures this frame's typed text
func (s *source) poll() {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
}

func (s *source) Pointer() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (s *source) PointerPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (s *source) PointerReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (s *source) Released(a input.Action) bool {
	for _, kb := range s.keys[a] {
		if inpututil.IsKeyJustReleased(kb.key) && (!kb.ctrl || ctrlDown()) {
			return true
		}
	}
	return false
}

func (s *source) Held(a input.Action) bool {
	for _, kb := range s.keys[a] {
		if ebiten.IsKeyPressed(kb.key) && (!kb.ctrl || ctrlDown()) {
			return true
		}
	}
	return false
}

// Chars drops typed text while Ctrl is down so shortcuts don't type letters.
func (s *source) Chars() []rune {
	if ctrlDown() {
		return nil
	}
	return s.chars
}

func ctrlDown() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
