package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/wavyrects/internal/config"
	"github.com/Faultbox/wavyrects/internal/engine/imagegen"
)

// imagePanel shows the one-shot generated image.
type imagePanel struct {
	gen      *imagegen.Generator
	settings imagegen.Settings
}

func newImagePanel(cfg config.ImageConfig) (*imagePanel, error) {
	gen, err := imagegen.New(int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		return nil, fmt.Errorf("creating image generator: %w", err)
	}

	p := &imagePanel{gen: gen, settings: imagegen.Settings{Time: cfg.Time}}
	gen.Update(p.settings)
	return p, nil
}

// render generates the image on the first frame and again whenever the
// time slider moves.
func (p *imagePanel) render() {
	if imgui.SliderFloatV("image time", &p.settings.Time, 0, 10, "%.2f", imgui.SliderFlagsNone) {
		p.gen.Update(p.settings)
		p.gen.Generate()
	}
	if !p.gen.Generated() {
		p.gen.Generate()
	}

	w, h := p.gen.Size()

	avail := imgui.ContentRegionAvail()
	displayW, displayH := float32(w), float32(h)
	if displayW > avail.X {
		displayH *= avail.X / displayW
		displayW = avail.X
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(p.gen.Texture()))
	imgui.ImageV(*texRef, imgui.NewVec2(displayW, displayH), imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
}

func (p *imagePanel) Destroy() {
	p.gen.Destroy()
}
