// Package input maps SDL2 events to window actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is something the window loop should do in response to input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePlay
	ActionScreenshot
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionTogglePlay:
		return "toggle-play"
	case ActionScreenshot:
		return "screenshot"
	case ActionResize:
		return "resize"
	default:
		return "none"
	}
}

// Bindings maps key presses to actions.
type Bindings map[sdl.Keycode]Action

// DefaultBindings returns Escape to quit, Space to play/pause and F12 to
// capture a screenshot.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.K_ESCAPE: ActionQuit,
		sdl.K_SPACE:  ActionTogglePlay,
		sdl.K_F12:    ActionScreenshot,
	}
}

// Translate returns the action for a single event. Key repeats and
// releases map to ActionNone.
func Translate(event sdl.Event, b Bindings) Action {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return ActionQuit

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return ActionResize
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return b[e.Keysym.Sym]
		}
	}
	return ActionNone
}

// Input polls SDL events once per frame.
type Input struct {
	bindings Bindings
	actions  []Action
}

// New creates an input handler with the given bindings.
func New(b Bindings) *Input {
	return &Input{
		bindings: b,
		actions:  make([]Action, 0, 8),
	}
}

// Update drains the SDL event queue and returns the actions it produced.
// The slice is reused by the next call.
func (i *Input) Update() []Action {
	i.actions = i.actions[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if a := Translate(event, i.bindings); a != ActionNone {
			i.actions = append(i.actions, a)
		}
	}
	return i.actions
}
