package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const demoDefinition = `
name: demo
args:
  - name: debug
    short: d
  - name: level
    long: level
    takes_value: true
    default: info
  - name: input
subcommands:
  - name: run
    args:
      - name: fast
        long: fast
`

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoDefinition), 0o600))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"argmatch"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_YAML(t *testing.T) {
	def := writeDefinition(t)

	code, stdout, stderr := runCLI(def, "--", "-d", "in.txt", "run", "--fast")
	require.Equal(t, exitOK, code, stderr)

	var got matchReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "demo", got.Command)
	assert.Equal(t, []argReport{
		{Name: "debug", Source: "command-line", Occurrences: 1},
		{Name: "level", Source: "default", Values: []string{"info"}},
		{Name: "input", Source: "command-line", Occurrences: 1, Values: []string{"in.txt"}},
	}, got.Args)
	require.NotNil(t, got.Subcommand)
	assert.Equal(t, "run", got.Subcommand.Command)
	assert.Equal(t, []string{"demo", "run"}, got.Subcommand.Path)
	assert.Equal(t, []argReport{{Name: "fast", Source: "command-line", Occurrences: 1}}, got.Subcommand.Args)
}

func TestRun_JSON(t *testing.T) {
	def := writeDefinition(t)

	code, stdout, _ := runCLI("-f", "json", def, "--", "--level", "warn")
	require.Equal(t, exitOK, code)

	var got matchReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Args, 1)
	assert.Equal(t, []string{"warn"}, got.Args[0].Values)
	assert.Nil(t, got.Subcommand)
}

func TestRun_FormatFromEnv(t *testing.T) {
	def := writeDefinition(t)

	t.Setenv(formatEnv, "json")
	code, stdout, _ := runCLI(def)
	require.Equal(t, exitOK, code)
	assert.True(t, json.Valid([]byte(stdout)))

	t.Setenv(formatEnv, "xml")
	code, _, stderr := runCLI(def)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "unsupported output format")
}

func TestRun_Informational(t *testing.T) {
	def := writeDefinition(t)

	code, stdout, _ := runCLI("--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "USAGE:")
	assert.Contains(t, stdout, "--format <format>")

	code, stdout, _ = runCLI("--version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "argmatch "+version+"\n", stdout)

	code, stdout, _ = runCLI(def, "--", "help", "run")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "demo run")
}

func TestRun_Errors(t *testing.T) {
	def := writeDefinition(t)

	code, _, stderr := runCLI()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "error:")

	code, _, stderr = runCLI(def, "--", "--bogus")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "--bogus")
	assert.Contains(t, stderr, "USAGE:")

	code, _, stderr = runCLI(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "unable to load definition")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("args:\n  - name: a\n    requires: [ghost]\n"), 0o600))
	code, _, stderr = runCLI(bad)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "invalid definition")
}

func TestRun_Verbose(t *testing.T) {
	def := writeDefinition(t)

	code, _, stderr := runCLI("-v", def, "--", "-d")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "definition loaded")
}
