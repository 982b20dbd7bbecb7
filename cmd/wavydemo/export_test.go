package main

import (
	"testing"
	"time"
)

func TestExportPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		n    int
		want []string
	}{
		{"single", "/tmp/frame.png", 1, []string{"/tmp/frame.png"}},
		{"adds extension", "/tmp/frame", 1, []string{"/tmp/frame.png"}},
		{"numbered", "/tmp/frame.png", 2, []string{"/tmp/frame-1.png", "/tmp/frame-2.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exportPaths(tt.path, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("exportPaths(%q, %d) = %v, want %v", tt.path, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("path %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFrameStats(t *testing.T) {
	var s frameStats
	if mean, peak := s.average(); mean != 0 || peak != 0 {
		t.Errorf("empty stats = %v, %v", mean, peak)
	}

	s.record(2 * time.Millisecond)
	s.record(4 * time.Millisecond)
	mean, peak := s.average()
	if mean != 3 || peak != 4 {
		t.Errorf("average = %v, %v; want 3, 4", mean, peak)
	}

	for i := 0; i < len(s.samples); i++ {
		s.record(time.Millisecond)
	}
	if mean, _ := s.average(); mean != 1 {
		t.Errorf("after wrap average = %v, want 1", mean)
	}
}
