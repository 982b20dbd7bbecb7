package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/preview"
	"github.com/Faultbox/wavyrects/internal/rects"
)

// openExportDialog shows a native save dialog. The dialog blocks, so it runs
// on its own goroutine and hands the chosen path back to render.
func (app *App) openExportDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("PNG Images", "png").
			Title("Export frame").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				app.log.Warn("export dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case app.pendingExport <- filename:
		default:
			app.log.Warn("export already pending, dropping", zap.String("path", filename))
		}
	}()
}

// exportPaths returns one output path per panel. A single panel writes to
// path itself, several panels get a numeric suffix.
func exportPaths(path string, n int) []string {
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	if n == 1 {
		return []string{path}
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%d%s", base, i+1, ext)
	}
	return paths
}

// exportFrame renders the current frame of every panel on the CPU and saves
// it as PNG.
func (app *App) exportFrame(path string) {
	if len(app.panels) == 0 {
		return
	}

	size := app.cfg.Wavy.CanvasSize
	r := preview.Renderer{Width: size, Height: size, Background: app.cfg.Window.ClearColor}

	var errs error
	written := 0
	for i, out := range exportPaths(path, len(app.panels)) {
		p := app.panels[i]
		dc, err := r.Render(p.mesh.Vertices, p.style)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.id, err))
			continue
		}
		if err := dc.SavePNG(out); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.id, err))
		} else {
			written++
			app.log.Info("frame exported", zap.String("panel", p.id), zap.String("path", out))
		}
		dc.Close()
	}

	if errs != nil {
		app.log.Error("export failed", zap.Error(errs))
		app.notify(fmt.Sprintf("Export failed: %v", errs))
		return
	}
	app.notify(fmt.Sprintf("Exported %d frame(s) to %s", written, filepath.Dir(path)))
}

// captureCanvases saves the GPU output of every panel and the generated
// image as PNG files.
func (app *App) captureCanvases() {
	var saved []string
	var errs error

	for _, p := range app.panels {
		pixels, w, h, ok := p.canvasPixels(app.canvases)
		if !ok {
			continue
		}
		path, err := app.screenshots.CaptureFromPixels(p.id, pixels, w, h)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		saved = append(saved, path)
	}

	if app.image != nil {
		w, h := app.image.gen.Size()
		path, err := app.screenshots.CaptureFromPixels("image", app.image.gen.ReadPixels(), int(w), int(h))
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			saved = append(saved, path)
		}
	}

	if errs != nil {
		app.log.Error("screenshot failed", zap.Error(errs))
		app.notify(fmt.Sprintf("Screenshot failed: %v", errs))
		return
	}
	app.log.Info("screenshots saved", zap.Strings("paths", saved))
	app.notify(fmt.Sprintf("Saved %d screenshot(s) to %s", len(saved), app.screenshots.OutputDir()))
}

// frameStats keeps a short history of CPU frame times.
type frameStats struct {
	samples [120]float32 // milliseconds
	next    int
	filled  bool
}

func (s *frameStats) record(d time.Duration) {
	s.samples[s.next] = float32(d.Microseconds()) / 1000
	s.next = (s.next + 1) % len(s.samples)
	if s.next == 0 {
		s.filled = true
	}
}

// average returns the mean and maximum of the recorded samples.
func (s *frameStats) average() (mean, peak float32) {
	n := s.next
	if s.filled {
		n = len(s.samples)
	}
	if n == 0 {
		return 0, 0
	}
	var sum float32
	for _, v := range s.samples[:n] {
		sum += v
		peak = max(peak, v)
	}
	return sum / float32(n), peak
}

func (app *App) renderStatsWindow() {
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 0), imgui.CondFirstUseEver)
	if imgui.BeginV("Frame stats", &app.showStats, imgui.WindowFlagsNone) {
		mean, peak := app.frameStats.average()
		imgui.Text(fmt.Sprintf("%.1f FPS", imgui.CurrentIO().Framerate()))
		imgui.Text(fmt.Sprintf("UI build: %.2f ms avg, %.2f ms max", mean, peak))
		for _, p := range app.panels {
			drawn := int32(0)
			if c, ok := app.canvases.Get(p.handle); ok {
				drawn = c.painter.IndexCount() / rects.VerticesPerRect
			}
			imgui.Text(fmt.Sprintf("%s: %d rects, %d vertices, %d triangles drawn",
				p.id, len(p.layout), len(p.mesh.Vertices), drawn))
		}
	}
	imgui.End()
}
