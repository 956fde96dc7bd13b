package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"decaf/internal/config"
	"decaf/internal/logs"
)

// settings is decaf.toml with explicitly set flags applied on top.
type settings struct {
	cfg     config.Config
	timings bool
	logger  *slog.Logger
	closer  io.Closer
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	var cfg config.Config
	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if flags.Changed("max-diagnostics") {
		cfg.Diagnostics.Max, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = f.Value.String()
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		cfg.Driver.Jobs, _ = flags.GetInt("jobs")
	}
	if f := flags.Lookup("max-tokens"); f != nil && f.Changed {
		cfg.Driver.MaxTokens, _ = flags.GetInt("max-tokens")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	logger, closer, err := logs.New(logs.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return &settings{cfg: cfg, timings: timings, logger: logger, closer: closer}, nil
}

// useColor resolves auto against w.
func (s *settings) useColor(w io.Writer) bool {
	switch s.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(w)
}
