package input

// Frame is a synthetic one-tick Source, used by hosts that translate their
// own events (such as terminal lines) into console input.
type Frame struct {
	X, Y     float64
	Down     bool // pointer button pressed this tick
	Up       bool // pointer button released this tick
	KeysUp   []Action
	KeysHeld []Action
	Text     string
}

func (f Frame) Pointer() (float64, float64) { return f.X, f.Y }
func (f Frame) PointerPressed() bool         { return f.Down }
func (f Frame) PointerReleased() bool        { return f.Up }
func (f Frame) Chars() []rune                { return []rune(f.Text) }

func (f Frame) Released(a Action) bool { return contains(f.KeysUp, a) }
func (f Frame) Held(a Action) bool     { return contains(f.KeysHeld, a) }

func contains(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
