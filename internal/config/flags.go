package config

import "flag"

// Command-line overrides. Zero values leave the loaded setting untouched.
var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Also write logs to this file")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagNoVSync     = flag.Bool("no-vsync", false, "Disable vertical sync")
	flagRects       = flag.Int("rects", 0, "Rectangle count for every panel")
	flagScale       = flag.Float64("scale", 0, "Rectangle size relative to the column width")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the -write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}

	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagNoVSync {
		cfg.Window.VSync = false
	}

	if *flagScale > 0 {
		cfg.Wavy.Scale = float32(*flagScale)
	}
	if *flagRects > 0 {
		for i := range cfg.Wavy.Panels {
			cfg.Wavy.Panels[i].RectCount = *flagRects
		}
		// Keep the slider able to reach the requested count.
		cfg.Wavy.MaxRects = max(cfg.Wavy.MaxRects, *flagRects)
	}
}
