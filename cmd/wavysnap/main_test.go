package main

import (
	"path/filepath"
	"testing"
)

func TestFrameTimes(t *testing.T) {
	got := frameTimes(1, 0.5, 3)
	want := []float32{1, 1.5, 2}
	if len(got) != len(want) {
		t.Fatalf("frameTimes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if got := frameTimes(0, 1, 0); got != nil {
		t.Errorf("expected nil for zero frames, got %v", got)
	}
}

func TestFrameName(t *testing.T) {
	want := filepath.Join("out", "frame_0007.png")
	if got := frameName("out", 7); got != want {
		t.Errorf("frameName = %s, want %s", got, want)
	}
}
