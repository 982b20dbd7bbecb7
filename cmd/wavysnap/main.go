// Wavy Snap - renders wavy rectangle frames to PNG without a GPU.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/config"
	"github.com/Faultbox/wavyrects/internal/logger"
	"github.com/Faultbox/wavyrects/internal/preview"
	"github.com/Faultbox/wavyrects/internal/rects"
)

var (
	flagFrames = flag.Int("frames", 10, "Number of frames to render")
	flagStart  = flag.Float64("start", 0, "Time of the first frame in seconds")
	flagStep   = flag.Float64("dt", 0.1, "Time step between frames in seconds")
	flagOut    = flag.String("out", "snapshots", "Output directory")
	flagSize   = flag.Int("size", 0, "Frame edge in pixels (default: wavy.canvas_size)")
	flagPanel  = flag.Int("panel", 0, "Panel whose count and style are used")
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
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if *flagPanel < 0 || *flagPanel >= len(cfg.Wavy.Panels) {
		return fmt.Errorf("panel %d out of range [0,%d)", *flagPanel, len(cfg.Wavy.Panels))
	}
	panel := cfg.Wavy.Panels[*flagPanel]

	size := cfg.Wavy.CanvasSize
	if *flagSize > 0 {
		size = *flagSize
	}

	if err := os.MkdirAll(*flagOut, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	r := preview.Renderer{Width: size, Height: size, Background: cfg.Window.ClearColor}
	var layout []rects.OrientedRect
	var mesh rects.Mesh

	times := frameTimes(float32(*flagStart), float32(*flagStep), *flagFrames)
	pb := progressbar.Default(int64(len(times)), "rendering")
	defer pb.Close()

	for i, t := range times {
		layout = rects.AppendRects(layout[:0], t, cfg.Wavy.Scale, uint32(panel.RectCount), cfg.Wavy.Bounds)
		mesh.Encode(layout)

		dc, err := r.Render(mesh.Vertices, panel.Style)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		path := frameName(*flagOut, i)
		err = dc.SavePNG(path)
		dc.Close()
		if err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		logger.Debug("frame written", zap.String("path", path), zap.Float32("time", t))
		pb.Add(1)
	}

	logger.Info("snapshots written",
		zap.Int("frames", *flagFrames),
		zap.String("dir", *flagOut),
		zap.Int("size", size))
	return nil
}

// frameTimes returns n animation times starting at start, dt apart.
func frameTimes(start, dt float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	times := make([]float32, n)
	for i := range times {
		times[i] = start + float32(i)*dt
	}
	return times
}

func frameName(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
}
