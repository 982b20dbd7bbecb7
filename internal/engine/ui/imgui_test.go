package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindFont(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.ttf")
	if err := os.WriteFile(present, []byte("ttf"), 0644); err != nil {
		t.Fatalf("writing font: %v", err)
	}
	missing := filepath.Join(dir, "missing.ttf")

	if got := FindFont("/explicit.ttf", []string{present}); got != "/explicit.ttf" {
		t.Errorf("explicit path should win, got %s", got)
	}
	if got := FindFont("", []string{missing, present}); got != present {
		t.Errorf("expected first existing candidate %s, got %s", present, got)
	}
	if got := FindFont("", []string{missing}); got != "" {
		t.Errorf("expected no font, got %s", got)
	}
}
