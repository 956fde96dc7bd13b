package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decaf/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, config.FileName), `
[diagnostics]
max = 7

[output]
format = "json"

[driver]
jobs = 3
max_tokens = 1000

[log]
level = "debug"
file = "logs/decaf.log"
`)
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := config.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Diagnostics.Max)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Driver.Jobs)
	assert.Equal(t, 1000, cfg.Driver.MaxTokens)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(root, "logs", "decaf.log"), cfg.Log.File)
	assert.Equal(t, filepath.Join(root, config.FileName), cfg.Path)
}

func TestDiscoverWithoutFile(t *testing.T) {
	cfg, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"format":  "[output]\nformat = \"xml\"\n",
		"color":   "[output]\ncolor = \"always\"\n",
		"max":     "[diagnostics]\nmax = -1\n",
		"jobs":    "[driver]\njobs = -2\n",
		"unknown": "[output]\nwidth = 80\n",
		"syntax":  "[output\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.FileName)
			writeFile(t, path, content)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	}
}
