// Package ui wraps the Dear ImGui SDL backend used by the demo.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/engine/renderer"
	"github.com/Faultbox/wavyrects/internal/logger"
)

// DefaultFontSize is used when Config.FontSize is zero.
const DefaultFontSize = 16

// Config holds backend window settings.
type Config struct {
	Title      string
	Width      int
	Height     int
	ClearColor [4]float32
	Font       string  // TTF path; empty searches FontCandidates
	FontSize   float32 // pixels
}

// FontCandidates are tried in order when no font is configured.
var FontCandidates = []string{
	"/System/Library/Fonts/SFNS.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// Backend owns the ImGui context, the SDL window and its GL context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	info    renderer.Info
	log     *zap.Logger
}

// NewBackend creates the window and initializes OpenGL.
func NewBackend(cfg Config) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added before the first frame builds the atlas.
	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont(cfg.Font, cfg.FontSize)
	})

	cc := cfg.ClearColor
	b.backend.SetBgColor(imgui.NewVec4(cc[0], cc[1], cc[2], cc[3]))
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	b.info, err = renderer.Init()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindFont returns path if set, otherwise the first existing candidate.
func FindFont(path string, candidates []string) string {
	if path != "" {
		return path
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (b *Backend) loadFont(path string, size float32) {
	fontPath := FindFont(path, FontCandidates)
	if fontPath == "" {
		b.log.Debug("no font found, using ImGui default")
		return
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	if font := imgui.CurrentIO().Fonts().AddFontFromFileTTFV(fontPath, size, fontCfg, nil); font == nil {
		b.log.Warn("failed to load font", zap.String("path", fontPath))
		return
	}
	b.log.Info("loaded font", zap.String("path", fontPath), zap.Float32("size", size))
}

// Info returns the OpenGL driver description.
func (b *Backend) Info() renderer.Info {
	return b.info
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// Quit asks the render loop to stop after the current frame.
func (b *Backend) Quit() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
