package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/arena"
	"github.com/Faultbox/wavyrects/internal/config"
	"github.com/Faultbox/wavyrects/internal/engine/framebuffer"
	"github.com/Faultbox/wavyrects/internal/engine/painter"
	"github.com/Faultbox/wavyrects/internal/logger"
	"github.com/Faultbox/wavyrects/internal/player"
	"github.com/Faultbox/wavyrects/internal/rects"
	"github.com/Faultbox/wavyrects/internal/style"
)

// canvas is the GPU side of one wavy panel.
type canvas struct {
	painter *painter.RectPainter
	fb      *framebuffer.Framebuffer
}

func newCanvas(size int32) (*canvas, error) {
	p, err := painter.New()
	if err != nil {
		return nil, err
	}
	fb, err := framebuffer.New(size, size, framebuffer.Options{})
	if err != nil {
		p.Destroy()
		return nil, err
	}
	return &canvas{painter: p, fb: fb}, nil
}

func (c *canvas) Destroy() {
	c.painter.Destroy()
	c.fb.Destroy()
}

// wavyPanel is one "wavy rectangles with controls" widget.
type wavyPanel struct {
	id     string
	handle arena.Handle

	style       style.Style
	count       int32
	player      player.State
	timeSeconds float32

	layout []rects.OrientedRect
	mesh   rects.Mesh

	log *zap.Logger
}

func newWavyPanel(canvases *arena.Arena[*canvas], id string, pc config.PanelConfig, wc config.WavyConfig) (*wavyPanel, error) {
	c, err := newCanvas(int32(wc.CanvasSize))
	if err != nil {
		return nil, fmt.Errorf("creating canvas: %w", err)
	}

	p := &wavyPanel{
		id:     id,
		handle: canvases.Insert(c),
		style:  pc.Style,
		count:  int32(pc.RectCount),
		log:    logger.Named("wavy").With(zap.String("panel", id)),
	}
	p.log.Debug("panel created", zap.Stringer("canvas", p.handle))
	return p, nil
}

// update recomputes the layout and mesh for the current time.
func (p *wavyPanel) update(now float64, wc config.WavyConfig) {
	p.timeSeconds = float32(p.player.Progress(now))
	p.layout = rects.AppendRects(p.layout[:0], p.timeSeconds, wc.Scale, uint32(p.count), wc.Bounds)
	p.mesh.Encode(p.layout)
}

func (p *wavyPanel) render(canvases *arena.Arena[*canvas], now float64, cfg *config.Config) {
	colorFlags := imgui.ColorEditFlagsNoInputs | imgui.ColorEditFlagsAlphaBar
	imgui.ColorEdit4V("fill", &p.style.Fill, colorFlags)
	imgui.SameLine()
	imgui.ColorEdit4V("edge", &p.style.Edge, colorFlags)

	imgui.SliderFloatV("line width (px)", &p.style.LineWidthPx, 0, style.MaxLineWidthPx, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("corner radius (px)", &p.style.CornerRadiusPx, 0, style.MaxCornerRadiusPx, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderIntV("Rectangle count", &p.count, 1, int32(cfg.Wavy.MaxRects), "%d", imgui.SliderFlagsNone)
	p.style = p.style.Clamp()

	c, ok := canvases.Get(p.handle)
	if !ok {
		imgui.TextDisabled("Canvas unavailable")
		return
	}

	p.update(now, cfg.Wavy)

	side := imgui.ContentRegionAvail().X
	if side < 16 {
		side = 16
	}
	fbScale := imgui.CurrentIO().DisplayFramebufferScale()
	c.fb.Resize(int32(side*fbScale.X), int32(side*fbScale.Y))

	c.painter.SetGeometry(p.mesh.Vertices, p.mesh.Indices)
	c.painter.SetStyle(p.style)
	c.painter.Draw(c.fb, cfg.Window.ClearColor)

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(c.fb.ColorTexture()))
	imgui.ImageV(*texRef, imgui.NewVec2(side, side), imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))

	p.renderPlayer(now)
}

// renderPlayer draws the play/pause button and the progress bar.
func (p *wavyPanel) renderPlayer(now float64) {
	height := imgui.FrameHeight()
	label := "Play"
	if p.player.Playing {
		label = "Pause"
	}
	if imgui.ButtonV(label, imgui.NewVec2(3*height, height)) {
		p.player.Toggle(now)
		p.log.Debug("player toggled",
			zap.Bool("playing", p.player.Playing),
			zap.Float32("time", p.timeSeconds))
	}
	imgui.SameLine()
	imgui.ProgressBarV(player.BarFraction(p.timeSeconds), imgui.NewVec2(-1, height), player.Label(p.timeSeconds))
}

// canvasPixels reads back the panel's last painted frame.
func (p *wavyPanel) canvasPixels(canvases *arena.Arena[*canvas]) ([]byte, int, int, bool) {
	c, ok := canvases.Get(p.handle)
	if !ok {
		return nil, 0, 0, false
	}
	w, h := c.fb.Size()
	return c.fb.ReadPixels(), int(w), int(h), true
}
