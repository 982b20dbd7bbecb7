package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/wavyrects/internal/style"
)

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if c.Window.FontSize < 0 {
		err = multierr.Append(err, fmt.Errorf("window.font_size %v must not be negative", c.Window.FontSize))
	}

	w := c.Wavy
	if w.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("wavy.scale %v must be positive", w.Scale))
	}
	if w.Bounds.X1 <= w.Bounds.X0 {
		err = multierr.Append(err, fmt.Errorf("wavy.bounds: x1 %v must exceed x0 %v", w.Bounds.X1, w.Bounds.X0))
	}
	if w.Bounds.Y1 < w.Bounds.Y0 {
		err = multierr.Append(err, fmt.Errorf("wavy.bounds: y1 %v is below y0 %v", w.Bounds.Y1, w.Bounds.Y0))
	}
	if w.MaxRects < 1 {
		err = multierr.Append(err, fmt.Errorf("wavy.max_rects %d must be at least 1", w.MaxRects))
	}
	if w.CanvasSize < 16 {
		err = multierr.Append(err, fmt.Errorf("wavy.canvas_size %d must be at least 16", w.CanvasSize))
	}
	if len(w.Panels) == 0 {
		err = multierr.Append(err, fmt.Errorf("wavy.panels must not be empty"))
	}
	for i, p := range w.Panels {
		if p.RectCount < 1 || p.RectCount > w.MaxRects {
			err = multierr.Append(err, fmt.Errorf("wavy.panels[%d].rect_count %d outside 1..%d", i, p.RectCount, w.MaxRects))
		}
		if p.Style != p.Style.Clamp() {
			err = multierr.Append(err, fmt.Errorf("wavy.panels[%d].style outside limits (colors 0..1, line width 0..%d, corner radius 0..%d)",
				i, style.MaxLineWidthPx, style.MaxCornerRadiusPx))
		}
	}

	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("image size %dx%d must be positive", c.Image.Width, c.Image.Height))
	}

	return err
}
