// Package config holds the console settings and palette, loaded from YAML.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the console configuration. Zero-valued fields in a file fall back to Default.
type Config struct {
	Renderer string `yaml:"renderer"`

	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	FontSize      float64 `yaml:"font_size"`
	LinePadding   float64 `yaml:"line_padding"`
	WidthPercent  float64 `yaml:"width_percent"`
	HeightPercent float64 `yaml:"height_percent"`
	MinWidth      float64 `yaml:"min_width"`
	MinHeight     float64 `yaml:"min_height"`

	// PointerYUp is for hosts whose pointer origin is the bottom-left corner.
	PointerYUp bool `yaml:"pointer_y_up"`

	ToggleKey     string `yaml:"toggle_key"`
	FilteredChars string `yaml:"filtered_chars"`
	OpenOnError   *bool  `yaml:"open_on_error"`

	// MaxEntries caps the log buffer; 0 keeps everything.
	MaxEntries int `yaml:"max_entries"`

	MatrixInterval time.Duration `yaml:"matrix_interval"`

	LocaleDir string `yaml:"locale_dir"`
	Language  string `yaml:"language"`

	Colors Colors `yaml:"colors"`
}

// Colors are "R,G,B,A" strings so the file stays hand-editable.
type Colors struct {
	Text          string `yaml:"text"`
	InputText     string `yaml:"input_text"`
	Alert         string `yaml:"alert"`
	Success       string `yaml:"success"`
	Failure       string `yaml:"failure"`
	Matrix        string `yaml:"matrix"`
	WindowBack    string `yaml:"window_background"`
	TitleBar      string `yaml:"title_bar"`
	CloseButton   string `yaml:"close_button"`
	InputActive   string `yaml:"input_active"`
	InputInactive string `yaml:"input_inactive"`
}

// Palette is the parsed form of Colors
type Palette struct {
	Text          color.RGBA
	InputText     color.RGBA
	Alert         color.RGBA
	Success       color.RGBA
	Failure       color.RGBA
	Matrix        color.RGBA
	WindowBack    color.RGBA
	TitleBar      color.RGBA
	CloseButton   color.RGBA
	InputActive   color.RGBA
	InputInactive color.RGBA
}

// Default returns the built-in configuration
func Default() Config {
	openOnError := true
	return Config{
		Renderer:       "ebiten",
		ScreenWidth:    1280,
		ScreenHeight:   720,
		FontSize:       12,
		LinePadding:    2,
		WidthPercent:   50,
		HeightPercent:  60,
		MinWidth:       100,
		MinHeight:      50,
		ToggleKey:      "F1",
		FilteredChars:  "`",
		OpenOnError:    &openOnError,
		MatrixInterval: 85 * time.Millisecond,
		LocaleDir:      "locales",
		Language:       "en_GB",
		Colors: Colors{
			Text:          "217,217,217,255",
			InputText:     "255,255,255,255",
			Alert:         "235,115,115,255",
			Success:       "115,255,115,255",
			Failure:       "255,115,115,255",
			Matrix:        "0,255,0,255",
			WindowBack:    "10,10,10,166",
			TitleBar:      "109,109,109,242",
			CloseButton:   "217,0,0,242",
			InputActive:   "102,102,102,230",
			InputInactive: "115,115,115,230",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the non-zero fields of o into c
func (c *Config) merge(o Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setFloat := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	setString(&c.Renderer, o.Renderer)
	setInt(&c.ScreenWidth, o.ScreenWidth)
	setInt(&c.ScreenHeight, o.ScreenHeight)
	setFloat(&c.FontSize, o.FontSize)
	setFloat(&c.LinePadding, o.LinePadding)
	setFloat(&c.WidthPercent, o.WidthPercent)
	setFloat(&c.HeightPercent, o.HeightPercent)
	setFloat(&c.MinWidth, o.MinWidth)
	setFloat(&c.MinHeight, o.MinHeight)
	if o.PointerYUp {
		c.PointerYUp = true
	}
	setString(&c.ToggleKey, o.ToggleKey)
	setString(&c.FilteredChars, o.FilteredChars)
	if o.OpenOnError != nil {
		c.OpenOnError = o.OpenOnError
	}
	setInt(&c.MaxEntries, o.MaxEntries)
	if o.MatrixInterval != 0 {
		c.MatrixInterval = o.MatrixInterval
	}
	setString(&c.LocaleDir, o.LocaleDir)
	setString(&c.Language, o.Language)

	setString(&c.Colors.Text, o.Colors.Text)
	setString(&c.Colors.InputText, o.Colors.InputText)
	setString(&c.Colors.Alert, o.Colors.Alert)
	setString(&c.Colors.Success, o.Colors.Success)
	setString(&c.Colors.Failure, o.Colors.Failure)
	setString(&c.Colors.Matrix, o.Colors.Matrix)
	setString(&c.Colors.WindowBack, o.Colors.WindowBack)
	setString(&c.Colors.TitleBar, o.Colors.TitleBar)
	setString(&c.Colors.CloseButton, o.Colors.CloseButton)
	setString(&c.Colors.InputActive, o.Colors.InputActive)
	setString(&c.Colors.InputInactive, o.Colors.InputInactive)
}

// Validate checks ranges and that every color parses
func (c Config) Validate() error {
	switch c.Renderer {
	case "ebiten", "tui":
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %v", c.FontSize)
	}
	if c.WidthPercent <= 0 || c.WidthPercent > 100 || c.HeightPercent <= 0 || c.HeightPercent > 100 {
		return fmt.Errorf("width_percent and height_percent must be in (0, 100]")
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("min_width and min_height must not be negative")
	}
	if c.MaxEntries < 0 {
		return fmt.Errorf("max_entries must not be negative, got %d", c.MaxEntries)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// OpenConsoleOnError reports whether errors force the console open
func (c Config) OpenConsoleOnError() bool {
	return c.OpenOnError == nil || *c.OpenOnError
}

// Band is the height of the title bar and the input field
func (c Config) Band() float64 {
	return c.FontSize + c.LinePadding
}

// Palette parses every configured color
func (c Config) Palette() (Palette, error) {
	var p Palette
	var firstErr error
	parse := func(name, s string, dst *color.RGBA) {
		v, ok := ParseRGBA(s)
		if !ok && firstErr == nil {
			firstErr = fmt.Errorf("colors.%s: invalid color %q, want R,G,B,A", name, s)
		}
		*dst = v
	}
	parse("text", c.Colors.Text, &p.Text)
	parse("input_text", c.Colors.InputText, &p.InputText)
	parse("alert", c.Colors.Alert, &p.Alert)
	parse("success", c.Colors.Success, &p.Success)
	parse("failure", c.Colors.Failure, &p.Failure)
	parse("matrix", c.Colors.Matrix, &p.Matrix)
	parse("window_background", c.Colors.WindowBack, &p.WindowBack)
	parse("title_bar", c.Colors.TitleBar, &p.TitleBar)
	parse("close_button", c.Colors.CloseButton, &p.CloseButton)
	parse("input_active", c.Colors.InputActive, &p.InputActive)
	parse("input_inactive", c.Colors.InputInactive, &p.InputInactive)
	return p, firstErr
}

// ParseRGBA parses "R,G,B,A" into color.RGBA. Values 0-255.
func ParseRGBA(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.RGBA{}, false
	}
	var vals [4]uint8
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, false
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}
