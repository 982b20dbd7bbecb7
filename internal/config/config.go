// Package config handles demo configuration loading and validation.
package config

import (
	"os"
	"path/filepath"

	"github.com/Faultbox/wavyrects/internal/rects"
	"github.com/Faultbox/wavyrects/internal/style"
)

// Config holds all demo settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Wavy       WavyConfig       `yaml:"wavy"`
	Image      ImageConfig      `yaml:"image"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Font       string     `yaml:"font"`      // TTF path for the demo UI; empty picks a system font
	FontSize   float32    `yaml:"font_size"` // pixels
}

// WavyConfig holds the rectangle animation settings shared by all panels.
type WavyConfig struct {
	Scale      float32       `yaml:"scale"`
	Bounds     rects.Bounds  `yaml:"bounds"`
	MaxRects   int           `yaml:"max_rects"`   // upper bound of the count slider
	CanvasSize int           `yaml:"canvas_size"` // offscreen target edge in pixels
	Panels     []PanelConfig `yaml:"panels"`
}

// PanelConfig holds the initial state of one wavy rectangles panel.
type PanelConfig struct {
	RectCount int         `yaml:"rect_count"`
	Style     style.Style `yaml:"style"`
}

// ImageConfig holds the generated image settings.
type ImageConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Time   float32 `yaml:"time"`
}

// ScreenshotConfig holds PNG capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's stock values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Wavy Rectangles",
			Width:      1280,
			Height:     900,
			VSync:      true,
			ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
			FontSize:   16,
		},
		Wavy: WavyConfig{
			Scale:      5,
			Bounds:     rects.DefaultBounds,
			MaxRects:   100,
			CanvasSize: 512,
			Panels: []PanelConfig{
				{RectCount: 20, Style: style.Default()},
				{RectCount: 20, Style: style.Default()},
			},
		},
		Image: ImageConfig{
			Width:  640,
			Height: 480,
		},
		Screenshot: ScreenshotConfig{
			Dir:    filepath.Join(os.TempDir(), "wavyrects"),
			Prefix: "wavy",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
