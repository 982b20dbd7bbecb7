// Package window opens a bare SDL2 window with an OpenGL 4.1 core context
// for drawing without ImGui.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/logger"
)

func init() {
	// GL calls must stay on the thread that created the context.
	runtime.LockOSThread()
}

// glAttributes requests a forward-compatible 4.1 core context, the newest
// profile available on every desktop platform we target.
var glAttributes = []struct {
	attr  sdl.GLattr
	value int
}{
	{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
	{sdl.GL_CONTEXT_MINOR_VERSION, 1},
	{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
	{sdl.GL_DOUBLEBUFFER, 1},
}

// Config describes the window to open.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

func (c Config) swapInterval() int {
	if c.VSync {
		return 1
	}
	return 0
}

// Window is an SDL window that owns the current GL context.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	log       *zap.Logger
}

// New initializes SDL video, opens a resizable high-DPI window and makes its
// GL context current.
func New(cfg Config) (*Window, error) {
	w := &Window{log: logger.Named("window")}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init: %w", err)
	}
	for _, a := range glAttributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("SDL_GL_SetAttribute(%d): %w", a.attr, err)
		}
	}

	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow: %w", err)
	}
	w.sdlWindow = win

	if w.glContext, err = win.GLCreateContext(); err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_GL_CreateContext: %w", err)
	}

	if err := sdl.GLSetSwapInterval(cfg.swapInterval()); err != nil {
		w.log.Warn("swap interval not applied", zap.Bool("vsync", cfg.VSync), zap.Error(err))
	}

	dw, dh := w.DrawableSize()
	w.log.Info("window opened",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int32("drawable_width", dw),
		zap.Int32("drawable_height", dh))
	return w, nil
}

// Close releases the context and the window and shuts SDL down. It is safe
// to call on a partially created window.
func (w *Window) Close() {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}
	sdl.Quit()
	w.log.Debug("window closed")
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the GL drawable size in pixels. On high-DPI displays
// it is larger than the window size.
func (w *Window) DrawableSize() (int32, int32) {
	return w.sdlWindow.GLGetDrawableSize()
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
