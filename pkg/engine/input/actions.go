package input

import (
	"sort"
	"strings"
)

// Action is a console-level intent produced by one or more raw key codes.
type Action int

const (
	ActionNone Action = iota

	ActionToggle      // Open/close the console
	ActionSubmit      // Dispatch the typed line
	ActionDelete      // Remove the last character
	ActionHistoryUp   // Recall an older line
	ActionHistoryDown // Recall a newer line
	ActionPaste       // Append the clipboard text
)

// Bindings maps raw codes to actions. Codes are host key names
// ("F1", "Enter", "ArrowUp") or terminal codes ("arrow_up", "enter");
// a "ctrl+" prefix requires the control modifier.
// Multiple codes may point to the same action.
type Bindings struct {
	codes map[string]Action
}

// DefaultBindings returns the standard console bindings with toggle bound to toggleCode.
func DefaultBindings(toggleCode string) *Bindings {
	b := &Bindings{codes: map[string]Action{
		"Enter":       ActionSubmit,
		"NumpadEnter": ActionSubmit,
		"enter":       ActionSubmit,

		"Backspace": ActionDelete,
		"backspace": ActionDelete,

		"ArrowUp":  ActionHistoryUp,
		"arrow_up": ActionHistoryUp,

		"ArrowDown":  ActionHistoryDown,
		"arrow_down": ActionHistoryDown,

		"ctrl+V": ActionPaste,
	}}
	b.SetSingleBinding(ActionToggle, toggleCode)
	return b
}

// Action returns the action bound to code, or ActionNone
func (b *Bindings) Action(code string) Action {
	if act, ok := b.codes[code]; ok {
		return act
	}
	return ActionNone
}

// CodesFor returns the codes bound to an action, sorted so callers see a stable order.
func (b *Bindings) CodesFor(a Action) []string {
	var codes []string
	for code, act := range b.codes {
		if act == a {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// The submit and arrow codes are reserved and cannot be rebound.
func (b *Bindings) SetSingleBinding(action Action, code string) {
	for c, a := range b.codes {
		if a == action && !reserved(c) {
			delete(b.codes, c)
		}
	}
	if code != "" && !reserved(code) {
		b.codes[code] = action
	}
}

// reserved reports whether code belongs to the fixed line-editing keys
func reserved(code string) bool {
	switch strings.ToLower(code) {
	case "enter", "numpadenter", "arrowup", "arrowdown", "arrow_up", "arrow_down":
		return true
	}
	return false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionToggle:
		return "Toggle Console"
	case ActionSubmit:
		return "Submit"
	case ActionDelete:
		return "Delete"
	case ActionHistoryUp:
		return "History Up"
	case ActionHistoryDown:
		return "History Down"
	case ActionPaste:
		return "Paste"
	default:
		return "None"
	}
}
