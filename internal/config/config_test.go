package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 900 {
		t.Errorf("expected 1280x900 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Wavy.Scale != 5 {
		t.Errorf("expected scale 5, got %v", cfg.Wavy.Scale)
	}
	if cfg.Wavy.Bounds.X0 != -0.9 || cfg.Wavy.Bounds.Y1 != 0.9 {
		t.Errorf("unexpected bounds %+v", cfg.Wavy.Bounds)
	}
	if len(cfg.Wavy.Panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(cfg.Wavy.Panels))
	}
	for i, p := range cfg.Wavy.Panels {
		if p.RectCount != 20 {
			t.Errorf("panel %d: expected 20 rects, got %d", i, p.RectCount)
		}
		if p.Style.LineWidthPx != 2 {
			t.Errorf("panel %d: expected line width 2, got %v", i, p.Style.LineWidthPx)
		}
	}
	if cfg.Image.Width != 640 || cfg.Image.Height != 480 {
		t.Errorf("expected 640x480 image, got %dx%d", cfg.Image.Width, cfg.Image.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1920
  height: 1080
  vsync: false

wavy:
  scale: 3
  max_rects: 50
  panels:
    - rect_count: 7
      style:
        edge: [1, 0.6, 0.1, 0.5]
        fill: [0.8, 0.8, 0.8, 0.2]
        line_width_px: 0.5
        corner_radius_px: 12

image:
  time: 2.5

logging:
  level: "debug"
  log_file: "wavy.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Wavy.Scale != 3 || cfg.Wavy.MaxRects != 50 {
		t.Errorf("unexpected wavy settings %+v", cfg.Wavy)
	}
	if len(cfg.Wavy.Panels) != 1 {
		t.Fatalf("expected panels replaced by file, got %d", len(cfg.Wavy.Panels))
	}
	p := cfg.Wavy.Panels[0]
	if p.RectCount != 7 || p.Style.CornerRadiusPx != 12 || p.Style.Fill[3] != 0.2 {
		t.Errorf("unexpected panel %+v", p)
	}
	if cfg.Wavy.Bounds.X1 != 0.9 {
		t.Error("bounds not in file should keep defaults")
	}
	if cfg.Image.Time != 2.5 || cfg.Image.Width != 640 {
		t.Errorf("unexpected image settings %+v", cfg.Image)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "wavy.log" {
		t.Errorf("unexpected logging settings %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/wavyrects.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Wavy.Scale = -1
	cfg.Wavy.Panels[0].RectCount = 500
	cfg.Wavy.Panels[1].Style.LineWidthPx = 99
	cfg.Image.Height = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Errorf("expected 5 errors, got %d: %v", len(errs), err)
	}
	for _, want := range []string{"window size", "wavy.scale", "panels[0].rect_count", "panels[1].style", "image size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := Default()
	cfg.Wavy.Bounds.X1 = cfg.Wavy.Bounds.X0
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "x1") {
		t.Errorf("expected bounds error, got %v", err)
	}

	cfg = Default()
	cfg.Wavy.Panels = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty panels")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "rects flag",
			setup: func() { *flagRects = 64 },
			verify: func(cfg *Config) {
				for i, p := range cfg.Wavy.Panels {
					if p.RectCount != 64 {
						t.Errorf("panel %d: expected 64 rects, got %d", i, p.RectCount)
					}
				}
			},
			teardown: func() { *flagRects = 0 },
		},
		{
			name:  "no-vsync flag",
			setup: func() { *flagNoVSync = true },
			verify: func(cfg *Config) {
				if cfg.Window.VSync {
					t.Error("expected vsync disabled")
				}
			},
			teardown: func() { *flagNoVSync = false },
		},
		{
			name:  "scale and log-file flags",
			setup: func() {
				*flagScale = 2.5
				*flagLogFile = "/tmp/wavy.log"
			},
			verify: func(cfg *Config) {
				if cfg.Wavy.Scale != 2.5 {
					t.Errorf("expected scale 2.5, got %v", cfg.Wavy.Scale)
				}
				if cfg.Logging.LogFile != "/tmp/wavy.log" {
					t.Errorf("expected log file override, got %q", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagScale = 0
				*flagLogFile = ""
			},
		},
		{
			name:  "rects above max raise the slider limit",
			setup: func() { *flagRects = 500 },
			verify: func(cfg *Config) {
				if cfg.Wavy.MaxRects != 500 {
					t.Errorf("expected max_rects 500, got %d", cfg.Wavy.MaxRects)
				}
			},
			teardown: func() { *flagRects = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	yamlContent := `
window:
  width: 1600
  height: 1000
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 1000 {
		t.Errorf("expected height 1000 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("wavy:\n  max_rects: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Wavy.Panels[1].RectCount = 42
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Wavy.Panels[1].RectCount != 42 {
		t.Errorf("expected 42 rects after reload, got %d", loaded.Wavy.Panels[1].RectCount)
	}
}

func TestSaveToLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	for range 2 {
		if err := Default().SaveTo(path); err != nil {
			t.Fatalf("SaveTo failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only %s, got %v", FileName, names)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("wavy:\n  scale: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case reloaded <- c:
			default:
			}
		})
	}()

	// Give the watcher time to register before the first write.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case c := <-reloaded:
			if c.Wavy.Scale != 7 {
				t.Errorf("expected reloaded scale 7, got %v", c.Wavy.Scale)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned error: %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("wavy:\n  scale: 7\n"), 0644); err != nil {
				t.Fatalf("failed to rewrite config: %v", err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestResolvePathPrefersFlag(t *testing.T) {
	*flagConfig = "/explicit/wavyrects.yaml"
	defer func() { *flagConfig = "" }()

	if got := ResolvePath(); got != "/explicit/wavyrects.yaml" {
		t.Errorf("ResolvePath = %s, want the -config value", got)
	}
}

func TestResolvePathEnv(t *testing.T) {
	t.Setenv(EnvPath, "/from/env.yaml")

	if got := ResolvePath(); got != "/from/env.yaml" {
		t.Errorf("ResolvePath = %s, want $%s", got, EnvPath)
	}

	*flagConfig = "/explicit/wavyrects.yaml"
	defer func() { *flagConfig = "" }()
	if got := ResolvePath(); got != "/explicit/wavyrects.yaml" {
		t.Errorf("ResolvePath = %s, want -config to win over $%s", got, EnvPath)
	}
}
