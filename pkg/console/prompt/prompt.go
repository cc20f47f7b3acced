// Package prompt owns the console's typed line, its history and the typing state.
package prompt

import (
	"log"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"devconsole/pkg/console/command"
	"devconsole/pkg/engine/input"
)

// Dispatcher runs a submitted line
type Dispatcher interface {
	Dispatch(line string) command.Result
}

// Clipboard supplies text for paste. Hosts without one pass nil.
type Clipboard interface {
	ReadAll() (string, error)
}

// Controller is the console input state machine. The console is Idle when
// disabled or unfocused, and Typing when enabled with the input field focused.
type Controller struct {
	dispatcher Dispatcher
	clipboard  Clipboard
	filtered   mapset.Set[rune]

	enabled bool
	typing  bool
	buffer  string

	// history holds submitted lines oldest first; cursor == len(history)
	// means no entry is selected and the buffer is live.
	history []string
	cursor  int

	deleteLatch input.Latch
}

// New creates a disabled controller. Runes in filtered are never typed into
// the buffer, so the toggle key's character cannot leak into it.
func New(d Dispatcher, clip Clipboard, filtered string) *Controller {
	set := mapset.New[rune]()
	for _, r := range filtered {
		set.Put(r)
	}
	set.Put('\r')
	set.Put('\n')
	return &Controller{dispatcher: d, clipboard: clip, filtered: set}
}

func (c *Controller) Enabled() bool  { return c.enabled }
func (c *Controller) Typing() bool   { return c.typing }
func (c *Controller) Buffer() string { return c.buffer }
func (c *Controller) Cursor() int    { return c.cursor }

// History returns a copy of the submitted lines, oldest first
func (c *Controller) History() []string {
	return append([]string(nil), c.history...)
}

// SetEnabled opens or closes the console. Either way the buffer is cleared;
// opening focuses the input field and closing drops focus.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	c.typing = enabled
	c.buffer = ""
	c.deleteLatch.Reset()
}

// Toggle flips the enabled state
func (c *Controller) Toggle() {
	c.SetEnabled(!c.enabled)
}

// SetBuffer replaces the typed line
func (c *Controller) SetBuffer(s string) {
	c.buffer = s
}

// PointerReleased focuses the input field when the release happened inside
// it and unfocuses it otherwise. The console stays enabled.
func (c *Controller) PointerReleased(insideInput bool) {
	if !c.enabled {
		return
	}
	c.typing = insideInput
}

// Update consumes one tick of keyboard input. It does nothing while disabled.
func (c *Controller) Update(src input.Source) {
	if !c.enabled {
		return
	}

	if c.typing {
		if held := src.Held(input.ActionDelete); held {
			if c.deleteLatch.Fire(true) {
				c.buffer = input.TrimLastGrapheme(c.buffer)
			}
		} else {
			c.deleteLatch.Fire(false)
			c.Type(src.Chars())
		}

		if src.Released(input.ActionPaste) {
			c.paste()
		}
		if src.Released(input.ActionSubmit) {
			c.Submit()
		}
	}

	if src.Released(input.ActionHistoryUp) {
		c.HistoryUp()
	}
	if src.Released(input.ActionHistoryDown) {
		c.HistoryDown()
	}
}

// Type appends printable runes to the buffer, skipping filtered ones
func (c *Controller) Type(chars []rune) {
	if len(chars) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(c.buffer)
	for _, r := range chars {
		if c.filtered.Has(r) {
			continue
		}
		b.WriteRune(r)
	}
	c.buffer = b.String()
}

// paste appends the clipboard contents; newlines become spaces
func (c *Controller) paste() {
	if c.clipboard == nil {
		return
	}
	text, err := c.clipboard.ReadAll()
	if err != nil {
		log.Printf("console: clipboard unavailable: %v", err)
		return
	}
	c.Type([]rune(strings.NewReplacer("\r\n", " ", "\n", " ").Replace(text)))
}

// Submit dispatches the buffer, records it in history unless it was blank,
// clears the buffer and points the cursor past the newest entry.
func (c *Controller) Submit() {
	line := c.buffer
	c.buffer = ""
	if res := c.dispatcher.Dispatch(line); res.Outcome != command.OutcomeEmpty {
		c.history = append(c.history, line)
	}
	c.cursor = len(c.history)
}

// HistoryUp selects the previous entry
func (c *Controller) HistoryUp() {
	if c.cursor > 0 {
		c.cursor--
	}
	if len(c.history) > 0 && c.cursor < len(c.history) {
		c.buffer = strings.TrimSpace(c.history[c.cursor])
	}
}

// HistoryDown selects the next entry, or clears the buffer past the newest one.
func (c *Controller) HistoryDown() {
	if c.cursor+1 < len(c.history) {
		c.cursor++
		c.buffer = strings.TrimSpace(c.history[c.cursor])
		return
	}
	c.buffer = ""
}
