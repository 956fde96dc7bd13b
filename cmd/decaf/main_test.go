package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decaf/internal/diagfmt"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := newCLI()
	c.root.SetOut(&out)
	c.root.SetErr(&errOut)
	c.root.SetArgs(args)
	err = c.Execute()
	return out.String(), errOut.String(), err
}

func writeUnit(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTokenizePretty(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "int x = 42;")
	stdout, stderr, err := execute(t, "--config", writeConfig(t, ""), "tokenize", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "KwInt")
	assert.Contains(t, stdout, "IntLit")
	assert.Contains(t, stdout, "42")
	assert.Contains(t, stdout, "EOF")
}

func TestTokenizeReportsDiagnosticsAndFails(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "int x = 99999999999;")
	stdout, stderr, err := execute(t, "--config", writeConfig(t, ""), "--color", "off", "tokenize", path)
	require.ErrorIs(t, err, errUnitsFailed)
	assert.Contains(t, stderr, "ERROR LEX1004: integer literal 99999999999 is too large")
	assert.NotContains(t, stderr, "\x1b[")
	assert.Contains(t, stdout, "IntLit", "tokens are still printed")
}

func TestTokenizePrettyShowsNotes(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "x = \"open")
	_, stderr, err := execute(t, "--config", writeConfig(t, ""), "--color", "off", "tokenize", path)
	require.ErrorIs(t, err, errUnitsFailed)
	assert.Contains(t, stderr, `ERROR LEX1002: unterminated string constant "open`)
	assert.Contains(t, stderr, "note: ")
	assert.Contains(t, stderr, ":1:10: input ends here")
}

func TestTokenizeJSONEmbedsDiagnostics(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "int x = 99999999999;\nx = \"open")
	stdout, stderr, err := execute(t, "--config", writeConfig(t, ""), "tokenize", "--format", "json", path)
	require.ErrorIs(t, err, errUnitsFailed)
	assert.Empty(t, stderr, "diagnostics travel inside the dump")

	var units []diagfmt.UnitTokens
	require.NoError(t, json.Unmarshal([]byte(stdout), &units))
	require.Len(t, units, 1)
	diags := units[0].Diagnostics
	require.Len(t, diags, 2)
	assert.Equal(t, "LEX1004", diags[0].Code)
	assert.Equal(t, "integer literal 99999999999 is too large", diags[0].Message)
	assert.Equal(t, uint32(9), diags[0].Col)
	assert.Equal(t, "LEX1002", diags[1].Code)
	assert.Equal(t, uint32(2), diags[1].Line)
	require.Len(t, diags[1].Notes, 1)
	assert.Equal(t, "input ends here", diags[1].Notes[0].Msg)
	assert.Equal(t, uint32(10), diags[1].Notes[0].Col)
}

func TestTokenizeDirJSON(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "a.decaf", "class A {}")
	writeUnit(t, dir, "b.decaf", `Print("hi");`)

	stdout, _, err := execute(t, "--config", writeConfig(t, ""), "tokenize", "--format", "json", "--jobs", "2", dir)
	require.NoError(t, err)

	var units []diagfmt.UnitTokens
	require.NoError(t, json.Unmarshal([]byte(stdout), &units))
	require.Len(t, units, 2)
	assert.Equal(t, "a.decaf", units[0].Path)
	assert.Equal(t, "b.decaf", units[1].Path)
	assert.Equal(t, "StringLit", units[1].Tokens[2].Kind)
	assert.Equal(t, `"hi"`, units[1].Tokens[2].Value)
	assert.Empty(t, units[0].Diagnostics)
}

func TestTokenizeMsgpackFromConfig(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "true")
	cfg := writeConfig(t, "[output]\nformat = \"msgpack\"\n")
	stdout, _, err := execute(t, "--config", cfg, "tokenize", path)
	require.NoError(t, err)

	units, err := diagfmt.ReadTokensMsgpack(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "BoolLit", units[0].Tokens[0].Kind)
	assert.Equal(t, true, units[0].Tokens[0].Value)
}

func TestFlagOverridesConfig(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "a b c d")
	cfg := writeConfig(t, "[output]\nformat = \"msgpack\"\n\n[driver]\nmax_tokens = 2\n")
	stdout, stderr, err := execute(t, "--config", cfg, "--color", "off", "tokenize", "--format", "pretty", "--max-tokens", "3", path)
	require.ErrorIs(t, err, errUnitsFailed)
	assert.Contains(t, stderr, "LEX1005")
	assert.Equal(t, 4, strings.Count(stdout, "\n"), "three identifiers and EOF")
}

func TestTokenizeTimings(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "main.decaf", "x")
	_, stderr, err := execute(t, "--config", writeConfig(t, ""), "--timings", "tokenize", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "timings:")
	assert.Contains(t, stderr, "total")
}

func TestTokenizeBadInvocations(t *testing.T) {
	cfg := writeConfig(t, "")
	_, _, err := execute(t, "--config", cfg, "tokenize", filepath.Join(t.TempDir(), "missing.decaf"))
	require.Error(t, err)

	path := writeUnit(t, t.TempDir(), "main.decaf", "x")
	_, _, err = execute(t, "--config", cfg, "tokenize", "--format", "xml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[output].format")

	_, _, err = execute(t, "--config", cfg, "--log-level", "loud", "tokenize", path)
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version", "--full", "--color", "off")
	require.NoError(t, err)
	assert.Contains(t, stdout, "decaf ")
	assert.Contains(t, stdout, "commit: unknown")
	assert.Contains(t, stdout, "built:  unknown")

	stdout, _, err = execute(t, "version", "--format", "json")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "decaf", payload.Tool)
	assert.Empty(t, payload.GitCommit)

	_, _, err = execute(t, "version", "--format", "yaml")
	require.Error(t, err)
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "main.decaf", "int x = 99999999999;")
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	// profiles are written even when the run reports unit errors
	_, _, err := execute(t, "--config", writeConfig(t, ""), "--cpu-profile", cpu, "--mem-profile", mem, "tokenize", path)
	require.ErrorIs(t, err, errUnitsFailed)
	assert.FileExists(t, cpu)
	assert.FileExists(t, mem)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeUnit(t, t.TempDir(), "decaf.toml", content)
}
