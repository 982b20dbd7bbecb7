// Wavy Demo - animated rounded rectangles drawn with an SDF shader inside a
// Dear ImGui window.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/arena"
	"github.com/Faultbox/wavyrects/internal/config"
	"github.com/Faultbox/wavyrects/internal/engine/debug"
	"github.com/Faultbox/wavyrects/internal/engine/ui"
	"github.com/Faultbox/wavyrects/internal/logger"
)

const (
	sidePanelWidth = float32(260)
	notifyDuration = 2 * time.Second
	sourceURL      = "https://github.com/Faultbox/wavyrects"
)

func main() {
	runtime.LockOSThread()

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

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	logger.Info("=== Wavy Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("demo closed normally")
}

// App is the demo application state.
type App struct {
	cfg     *config.Config
	backend *ui.Backend
	log     *zap.Logger

	canvases *arena.Arena[*canvas]
	panels   []*wavyPanel
	image    *imagePanel

	screenshots         *debug.ScreenshotCapture
	screenshotRequested bool

	// Written by background goroutines, consumed on the main thread.
	pendingExport chan string
	pendingConfig chan *config.Config
	stopWatch     context.CancelFunc

	notifyMsg  string
	notifyTime time.Time

	verbose    bool
	showStats  bool
	frameStats frameStats
}

// NewApp creates the window, the GL resources and one panel per configured
// wavy widget.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:           cfg,
		log:           logger.Named("demo"),
		canvases:      &arena.Arena[*canvas]{},
		screenshots:   debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		pendingExport: make(chan string, 1),
		pendingConfig: make(chan *config.Config, 1),
		verbose:       logger.Level() <= zap.DebugLevel,
	}

	var err error
	app.backend, err = ui.NewBackend(ui.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		ClearColor: cfg.Window.ClearColor,
		Font:       cfg.Window.Font,
		FontSize:   cfg.Window.FontSize,
	})
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}

	for i, pc := range cfg.Wavy.Panels {
		p, err := newWavyPanel(app.canvases, fmt.Sprintf("panel%d", i), pc, cfg.Wavy)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		app.panels = append(app.panels, p)
	}

	app.image, err = newImagePanel(cfg.Image)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.watchConfig(config.ResolvePath())
	return app, nil
}

// watchConfig reloads panel settings whenever the config file changes.
func (app *App) watchConfig(path string) {
	if path == "" {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	app.stopWatch = cancel

	go func() {
		err := config.Watch(ctx, path, func(c *config.Config) {
			// Keep only the newest reload.
			select {
			case <-app.pendingConfig:
			default:
			}
			app.pendingConfig <- c
		})
		if err != nil {
			app.log.Warn("config watch stopped", zap.Error(err))
		}
	}()
}

// applyConfig takes the reloadable parts of c: the window title, animation
// settings, panel styles and counts, and the log level. Window and canvas
// sizes need a restart.
func (app *App) applyConfig(c *config.Config) {
	if c.Window.Title != app.cfg.Window.Title {
		app.cfg.Window.Title = c.Window.Title
		app.backend.SetWindowTitle(c.Window.Title)
	}
	app.cfg.Wavy.Scale = c.Wavy.Scale
	app.cfg.Wavy.Bounds = c.Wavy.Bounds
	app.cfg.Wavy.MaxRects = c.Wavy.MaxRects
	for i, p := range app.panels {
		if i >= len(c.Wavy.Panels) {
			break
		}
		p.style = c.Wavy.Panels[i].Style
		p.count = int32(c.Wavy.Panels[i].RectCount)
	}

	app.cfg.Logging.Level = c.Logging.Level
	if !app.verbose {
		logger.SetLevel(logger.ParseLevel(c.Logging.Level))
	}
	app.notify("Config reloaded")
}

// Close stops the config watcher and releases all GPU resources.
func (app *App) Close() {
	if app.stopWatch != nil {
		app.stopWatch()
		app.stopWatch = nil
	}
	if app.image != nil {
		app.image.Destroy()
		app.image = nil
	}
	app.canvases.Each(func(h arena.Handle, c *canvas) {
		c.Destroy()
		app.canvases.Remove(h)
	})
	app.panels = nil
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render is called each frame to draw the UI.
func (app *App) render() {
	frameStart := time.Now()

	select {
	case path := <-app.pendingExport:
		app.exportFrame(path)
	case c := <-app.pendingConfig:
		app.applyConfig(c)
	default:
	}

	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}

	app.renderMenuBar()

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(sidePanelWidth, workSize.Y))
	if imgui.BeginV("Side Panel", nil, flags) {
		app.renderSidePanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+sidePanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-sidePanelWidth, workSize.Y))
	if imgui.BeginV("Rounded rectangles", nil, flags) {
		app.renderCentralPanel()
	}
	imgui.End()

	// Canvases were painted above, so a capture here sees this frame.
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureCanvases()
	}

	if app.showStats {
		app.renderStatsWindow()
	}
	app.renderNotification(workPos)

	app.frameStats.record(time.Since(frameStart))
}

func (app *App) renderMenuBar() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Export frame...") {
			app.openExportDialog()
		}
		imgui.Separator()
		if imgui.MenuItemBool("Quit") {
			app.backend.Quit()
		}
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

func (app *App) renderSidePanel() {
	imgui.TextWrapped("Each rectangle is a single triangle. The fragment shader " +
		"cuts the rounded rectangle out of it with a signed distance field.")
	imgui.Spacing()

	imgui.Text("Source:")
	imgui.SameLine()
	if imgui.Button("Copy link") {
		imgui.SetClipboardText(sourceURL)
		app.notify("Copied: " + sourceURL)
	}
	imgui.TextDisabled(sourceURL)

	imgui.Separator()
	if imgui.Checkbox("Verbose logging", &app.verbose) {
		if app.verbose {
			logger.SetLevel(zap.DebugLevel)
		} else {
			logger.SetLevel(logger.ParseLevel(app.cfg.Logging.Level))
		}
		app.log.Info("log level changed", zap.Stringer("level", logger.Level()))
	}
	imgui.Checkbox("Frame stats", &app.showStats)

	imgui.Separator()
	imgui.TextDisabled("F12: save canvases as PNG")
	imgui.TextDisabled(app.screenshots.OutputDir())
}

func (app *App) renderCentralPanel() {
	now := imgui.Time()

	columns := int32(min(len(app.panels), 2))
	if columns > 0 && imgui.BeginTable("wavyPanels", columns) {
		for i, p := range app.panels {
			if i%int(columns) == 0 {
				imgui.TableNextRow()
			}
			imgui.TableNextColumn()
			imgui.PushIDStr(p.id)
			p.render(app.canvases, now, app.cfg)
			imgui.PopID()
		}
		imgui.EndTable()
	}

	imgui.Separator()
	app.image.render()
}

func (app *App) renderNotification(workPos imgui.Vec2) {
	if app.notifyMsg == "" {
		return
	}
	if time.Since(app.notifyTime) >= notifyDuration {
		app.notifyMsg = ""
		return
	}

	notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+sidePanelWidth+10, workPos.Y+10))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##Notify", nil, notifyFlags) {
		imgui.Text(app.notifyMsg)
	}
	imgui.End()
}

func (app *App) notify(msg string) {
	app.notifyMsg = msg
	app.notifyTime = time.Now()
}
