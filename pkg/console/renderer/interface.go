// Package renderer holds what every console front-end shares.
package renderer

import (
	"log"

	"github.com/atotto/clipboard"

	"devconsole/pkg/console/prompt"
)

// Renderer is a console front-end. It owns the host loop and feeds the
// console one tick of input at a time.
type Renderer interface {
	// Init prepares the window or terminal. It must be called before Run.
	Init() error

	// Run blocks until the operator quits or the host loop fails.
	Run() error
}

// systemClipboard reads the OS clipboard
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// Clipboard returns the OS clipboard, or nil when the platform has no
// clipboard tool, in which case paste is disabled.
func Clipboard() prompt.Clipboard {
	if clipboard.Unsupported {
		log.Printf("console: no clipboard utility found, paste disabled")
		return nil
	}
	return systemClipboard{}
}
