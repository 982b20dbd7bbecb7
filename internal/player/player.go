// Package player tracks play/pause state for a time-driven animation.
package player

import (
	"fmt"
	"math"
)

// BarPeriod is the number of seconds one sweep of the progress bar covers.
const BarPeriod = 10.0

// State is the play/pause state of one controller.
//
// While paused, LastPause holds the elapsed progress. While playing, it holds
// the clock time at which progress was zero, so progress is now-LastPause.
type State struct {
	Playing   bool     `yaml:"playing"`
	LastPause *float64 `yaml:"last_pause,omitempty"`
}

func (s *State) offset() float64 {
	if s.LastPause == nil {
		return 0
	}
	return *s.LastPause
}

// Progress returns the elapsed animation time in seconds at clock time now.
func (s *State) Progress(now float64) float64 {
	if s.Playing {
		return now - s.offset()
	}
	return s.offset()
}

// Toggle switches between playing and paused at clock time now. Progress is
// continuous across the switch.
func (s *State) Toggle(now float64) {
	s.Playing = !s.Playing
	v := now - s.offset()
	s.LastPause = &v
}

// BarFraction returns the progress bar fill for secs, wrapping every
// BarPeriod seconds.
func BarFraction(secs float32) float32 {
	_, frac := math.Modf(float64(secs) / BarPeriod)
	return float32(frac)
}

// Label formats secs for the progress bar overlay.
func Label(secs float32) string {
	return fmt.Sprintf("%2.2f s", secs)
}
