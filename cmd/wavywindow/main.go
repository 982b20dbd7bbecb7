// Wavy Window - a single wavy rectangles widget painted full-window.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/config"
	"github.com/Faultbox/wavyrects/internal/engine/debug"
	"github.com/Faultbox/wavyrects/internal/engine/framebuffer"
	"github.com/Faultbox/wavyrects/internal/engine/input"
	"github.com/Faultbox/wavyrects/internal/engine/painter"
	"github.com/Faultbox/wavyrects/internal/engine/renderer"
	"github.com/Faultbox/wavyrects/internal/engine/window"
	"github.com/Faultbox/wavyrects/internal/logger"
	"github.com/Faultbox/wavyrects/internal/player"
	"github.com/Faultbox/wavyrects/internal/rects"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("wavy window failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("window closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	if _, err := renderer.Init(); err != nil {
		return err
	}

	rp, err := painter.New()
	if err != nil {
		return err
	}
	defer rp.Destroy()

	w, h := win.DrawableSize()
	fb, err := framebuffer.New(w, h, framebuffer.Options{})
	if err != nil {
		return err
	}
	defer fb.Destroy()

	panel := cfg.Wavy.Panels[0]
	rp.SetStyle(panel.Style)

	shots := debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)
	in := input.New(input.DefaultBindings())
	state := player.State{Playing: true}
	var layout []rects.OrientedRect
	var mesh rects.Mesh

	for {
		now := float64(sdl.GetTicks64()) / 1000
		capture := false

		for _, action := range in.Update() {
			switch action {
			case input.ActionQuit:
				return nil
			case input.ActionTogglePlay:
				state.Toggle(now)
				logger.Debug("player toggled", zap.Bool("playing", state.Playing))
				if state.Playing {
					win.SetTitle(cfg.Window.Title)
				} else {
					win.SetTitle(fmt.Sprintf("%s - paused at %s", cfg.Window.Title, player.Label(float32(state.Progress(now)))))
				}
			case input.ActionScreenshot:
				capture = true
			case input.ActionResize:
				dw, dh := win.DrawableSize()
				logger.Debug("window resized", zap.Int32("width", dw), zap.Int32("height", dh))
			}
		}

		t := float32(state.Progress(now))
		layout = rects.AppendRects(layout[:0], t, cfg.Wavy.Scale, uint32(panel.RectCount), cfg.Wavy.Bounds)
		mesh.Encode(layout)
		rp.SetGeometry(mesh.Vertices, mesh.Indices)

		w, h := win.DrawableSize()
		fb.Resize(w, h)
		rp.Draw(fb, cfg.Window.ClearColor)
		fb.BlitToDefault(w, h)

		if capture {
			fw, fh := fb.Size()
			path, err := shots.CaptureFromPixels("window", fb.ReadPixels(), int(fw), int(fh))
			if err != nil {
				logger.Error("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		win.SwapBuffers()
	}
}
