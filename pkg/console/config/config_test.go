package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 14.0, cfg.Band())
	assert.True(t, cfg.OpenConsoleOnError())

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{235, 115, 115, 255}, p.Alert)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().FontSize, cfg.FontSize)
}

func TestLoad_OverridesSetFields(t *testing.T) {
	path := writeConfig(t, `
renderer: tui
font_size: 16
toggle_key: F2
open_on_error: false
max_entries: 500
matrix_interval: 120ms
pointer_y_up: true
colors:
  alert: "1,2,3,4"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.Renderer)
	assert.Equal(t, 16.0, cfg.FontSize)
	assert.Equal(t, "F2", cfg.ToggleKey)
	assert.False(t, cfg.OpenConsoleOnError())
	assert.Equal(t, 500, cfg.MaxEntries)
	assert.Equal(t, 120*time.Millisecond, cfg.MatrixInterval)
	assert.True(t, cfg.PointerYUp)
	assert.Equal(t, 50.0, cfg.WidthPercent, "unset fields keep their defaults")

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, p.Alert)
	assert.Equal(t, color.RGBA{217, 217, 217, 255}, p.Text)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "renderer: sdl\n"))
	assert.ErrorContains(t, err, "unknown renderer")

	_, err = Load(writeConfig(t, "colors:\n  text: red\n"))
	assert.ErrorContains(t, err, "colors.text")

	_, err = Load(writeConfig(t, "font_size: [\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestParseRGBA(t *testing.T) {
	c, ok := ParseRGBA(" 10, 20 ,30,255")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, c)

	_, ok = ParseRGBA("1,2,3")
	assert.False(t, ok)
	_, ok = ParseRGBA("1,2,3,256")
	assert.False(t, ok)
}
