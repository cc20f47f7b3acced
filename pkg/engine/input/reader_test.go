package input

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_PlainStream(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	_, err = w.WriteString("list\r\nhello world\nno newline")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	lr := NewLineReader(r, &bytes.Buffer{})
	assert.False(t, lr.Interactive())

	for _, want := range []string{"list", "hello world", "no newline"} {
		line, err := lr.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err = lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFrame_Source(t *testing.T) {
	var src Source = Frame{
		X: 3, Y: 4, Down: true,
		KeysUp:   []Action{ActionSubmit},
		KeysHeld: []Action{ActionDelete},
		Text:     "hé",
	}
	x, y := src.Pointer()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	assert.True(t, src.PointerPressed())
	assert.False(t, src.PointerReleased())
	assert.True(t, src.Released(ActionSubmit))
	assert.False(t, src.Released(ActionDelete))
	assert.True(t, src.Held(ActionDelete))
	assert.Equal(t, []rune{'h', 'é'}, src.Chars())
}
