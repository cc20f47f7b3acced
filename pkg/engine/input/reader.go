package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"devconsole/pkg/engine/terminal"
)

// ErrInterrupted is returned when the operator presses Ctrl+C in raw mode.
var ErrInterrupted = errors.New("input: interrupted")

// Event is one unit of terminal input: a finished line, or a navigation code
// together with whatever had been typed when it arrived.
type Event struct {
	Code string // "enter", "arrow_up", "arrow_down"
	Text string
}

// LineReader reads console lines from a terminal or a plain stream.
type LineReader struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewLineReader creates a reader over in, echoing raw-mode input to out.
func NewLineReader(in *os.File, out io.Writer) *LineReader {
	return &LineReader{in: in, out: out}
}

// Interactive reports whether in is a terminal that supports raw mode
func (r *LineReader) Interactive() bool {
	return terminal.IsTerminal(r.in)
}

// ReadLine reads a cooked line without its newline
func (r *LineReader) ReadLine() (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(r.in)
	}
	line, err := r.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadEvent reads in raw mode, starting from prefill, until Enter or an
// up/down arrow. Backspace removes one character; other escape sequences are discarded.
func (r *LineReader) ReadEvent(prefill string) (Event, error) {
	// raw reads must not race a buffered reader holding bytes
	r.reader = nil

	fd := int(r.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return Event{}, fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	text := prefill
	fmt.Fprint(r.out, prefill)

	for {
		b, err := r.readByte()
		if err != nil {
			return Event{Code: "enter", Text: text}, err
		}

		switch {
		case b == 0x1b:
			if code := r.readEscape(); code != "" {
				return Event{Code: code, Text: text}, nil
			}
		case b == 3:
			fmt.Fprint(r.out, "\r\n")
			return Event{}, ErrInterrupted
		case b == '\r' || b == '\n':
			fmt.Fprint(r.out, "\r\n")
			return Event{Code: "enter", Text: text}, nil
		case b == 127 || b == 8:
			if text != "" {
				text = TrimLastGrapheme(text)
				fmt.Fprint(r.out, "\b \b")
			}
		case b >= 32:
			// multi-byte runes arrive one byte at a time
			text += string([]byte{b})
			r.out.Write([]byte{b})
		}
	}
}

// readByte reads a single byte from the terminal
func (r *LineReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := r.in.Read(buf)
	return buf[0], err
}

// readEscape consumes the rest of an escape sequence and returns the arrow code, if any.
// Both CSI (ESC [) and SS3 (ESC O) forms are accepted.
func (r *LineReader) readEscape() string {
	b2, err := r.readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return ""
	}
	b3, err := r.readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	}
	return ""
}
