package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file name searched for on startup.
	FileName = "wavyrects.yaml"

	// EnvPath names an environment variable holding a config path. The
	// -config flag wins over it.
	EnvPath = "WAVYRECTS_CONFIG"
)

// Load loads configuration with priority: defaults < file < flags, then
// validates the result.
func Load() (*Config, error) {
	return loadPath(ResolvePath())
}

// ResolvePath returns the config file Load reads: the -config flag, then
// $WAVYRECTS_CONFIG, then the first file found in the standard locations.
// It returns "" when there is none.
func ResolvePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return findConfigFile()
}

func loadPath(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		filepath.Join(".", FileName),
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "WavyRects")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "WavyRects")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "wavyrects")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "wavyrects")
	}
}

// loadFromFile merges a YAML file over the existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
