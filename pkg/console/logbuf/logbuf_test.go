package logbuf

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry_LineCount(t *testing.T) {
	assert.Equal(t, 0, NewEntry(SeverityInfo, "single line", "").LineCount())
	assert.Equal(t, 3, NewEntry(SeverityInfo, "a\nb\nc", "").LineCount())
	assert.Equal(t, 2, NewEntry(SeverityInfo, "trailing\n", "").LineCount())
}

func TestNewEntry_StackLineCount(t *testing.T) {
	assert.Equal(t, 0, NewEntry(SeverityError, "boom", "").StackLineCount())
	assert.Equal(t, 1, NewEntry(SeverityError, "boom", "main.go:1").StackLineCount())
	assert.Equal(t, 2, NewEntry(SeverityError, "boom", "a.go:1\nb.go:2").StackLineCount())
}

func TestEntry_SetColorOnce(t *testing.T) {
	e := NewEntry(SeverityInfo, "x", "")
	_, ok := e.Color()
	require.False(t, ok, "fresh entry must not have an override color")

	green := color.RGBA{0, 255, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	assert.Same(t, e, e.SetColor(green))
	e.SetColor(red)

	c, ok := e.Color()
	require.True(t, ok)
	assert.Equal(t, green, c)
}

func TestBuffer_AppendOrderAndClear(t *testing.T) {
	b := New(0)
	b.Append(SeverityInfo, "one", "")
	b.Append(SeverityWarning, "two", "")
	b.AppendColored(SeverityInfo, "three", "", color.RGBA{1, 2, 3, 255})

	snap := b.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "one", snap[0].Message())
	assert.Equal(t, SeverityWarning, snap[1].Severity())
	_, ok := snap[2].Color()
	assert.True(t, ok)

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Len(t, snap, 3, "snapshots are unaffected by Clear")
}

func TestBuffer_RetentionEvictsOldest(t *testing.T) {
	b := New(2)
	b.Append(SeverityInfo, "a", "")
	b.Append(SeverityInfo, "b", "")
	b.Append(SeverityInfo, "c", "")

	snap := b.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "b", snap[0].Message())
	assert.Equal(t, "c", snap[1].Message())
}

func TestBuffer_ConcurrentAppend(t *testing.T) {
	b := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Append(SeverityInfo, "line", "")
				_ = b.Snapshot()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, b.Len())
}
