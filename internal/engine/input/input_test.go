package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyDown(sym sdl.Keycode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym}}
}

func TestTranslate(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name  string
		event sdl.Event
		want  Action
	}{
		{"quit event", &sdl.QuitEvent{Type: sdl.QUIT}, ActionQuit},
		{"escape", keyDown(sdl.K_ESCAPE), ActionQuit},
		{"space", keyDown(sdl.K_SPACE), ActionTogglePlay},
		{"f12", keyDown(sdl.K_F12), ActionScreenshot},
		{"unbound key", keyDown(sdl.K_a), ActionNone},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}}, ActionNone},
		{"key release", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}}, ActionNone},
		{"resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED}, ActionResize},
		{"other window event", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.event, b); got != tt.want {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCustomBindings(t *testing.T) {
	b := Bindings{sdl.K_p: ActionTogglePlay}
	if got := Translate(keyDown(sdl.K_p), b); got != ActionTogglePlay {
		t.Errorf("expected custom binding, got %v", got)
	}
	if got := Translate(keyDown(sdl.K_SPACE), b); got != ActionNone {
		t.Errorf("expected unbound space, got %v", got)
	}
}
