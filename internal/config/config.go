// Package config loads decaf.toml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name looked up by Find.
const FileName = "decaf.toml"

// Config mirrors decaf.toml. Zero values mean "not set".
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Output      OutputConfig      `toml:"output"`
	Driver      DriverConfig      `toml:"driver"`
	Log         LogConfig         `toml:"log"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type DiagnosticsConfig struct {
	Max int `toml:"max"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty|json|msgpack
	Color  string `toml:"color"`  // auto|on|off
}

type DriverConfig struct {
	Jobs      int `toml:"jobs"`
	MaxTokens int `toml:"max_tokens"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the settings used when no decaf.toml exists.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100},
		Output:      OutputConfig{Format: "pretty", Color: "auto"},
		Log:         LogConfig{Level: "warn"},
	}
}

// Find walks up from startDir looking for decaf.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(filepath.Dir(path), cfg.Log.File)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads decaf.toml starting at startDir. Without one it
// returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated and numeric settings.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("[output].format must be pretty, json or msgpack, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative")
	}
	if c.Driver.Jobs < 0 {
		return fmt.Errorf("[driver].jobs must not be negative")
	}
	if c.Driver.MaxTokens < 0 {
		return fmt.Errorf("[driver].max_tokens must not be negative")
	}
	return nil
}
