package declarative

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/argmatch"
	"github.com/napalu/argmatch/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
name: deploy
version: 2.0.0
about: ships things
settings: [subcommand_required]
args:
  - name: verbose
    short: v
    long: verbose
    global: true
    multiple: true
  - name: env
    long: env
    takes_value: true
    possible_values: [dev, prod]
    default: dev
groups:
  - name: mode
    members: [verbose, env]
subcommands:
  - name: push
    aliases: [p]
    args:
      - name: target
        required: true
        help: where to push
      - name: tags
        long: tags
        takes_value: true
        delimiter: ","
        min_values: 1
`

const tomlDoc = `
name = "deploy"
version = "2.0.0"

[[args]]
name = "verbose"
short = "v"
long = "verbose"
global = true

[[args]]
name = "env"
long = "env"
takes_value = true
required = true
required_unless = [{ arg = "verbose" }]

[[subcommands]]
name = "push"

[[subcommands.args]]
name = "target"
index = 1
`

func newParser(t *testing.T, cmd *argmatch.Command) *argmatch.Parser {
	t.Helper()
	p, err := argmatch.NewParser(cmd)
	require.NoError(t, err)
	return p
}

func TestFromYAML(t *testing.T) {
	cmd, err := FromYAML([]byte(yamlDoc))
	require.NoError(t, err)
	p := newParser(t, cmd)

	m, err := p.Parse([]string{"deploy", "-vv", "p", "prod-1", "--tags", "a,b"})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Occurrences("verbose"))
	assert.Equal(t, []string{"dev"}, m.Values("env"))
	assert.Equal(t, argmatch.SourceDefault, m.ValueSource("env"))

	push := m.Innermost()
	assert.Equal(t, "push", push.Name())
	assert.Equal(t, []string{"prod-1"}, push.Values("target"))
	assert.Equal(t, []string{"a", "b"}, push.Values("tags"))

	_, err = p.Parse([]string{"deploy", "--env", "staging", "push", "x"})
	var pe *argmatch.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, argmatch.InvalidValue, pe.Kind)

	_, err = p.Parse([]string{"deploy"})
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, argmatch.MissingSubcommand, pe.Kind)
}

func TestFromTOML(t *testing.T) {
	cmd, err := FromTOML([]byte(tomlDoc))
	require.NoError(t, err)
	p := newParser(t, cmd)

	m, err := p.Parse([]string{"deploy", "--env", "prod", "push", "here"})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, m.Values("env"))
	assert.Equal(t, []string{"here"}, m.Innermost().Values("target"))

	_, err = p.Parse([]string{"deploy"})
	var pe *argmatch.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, argmatch.MissingRequiredArgument, pe.Kind)

	_, err = p.Parse([]string{"deploy", "-v"})
	assert.NoError(t, err)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   error
		path   string
	}{
		{"yaml unknown field", "name: x\nbogus: 1\n", YAML, errs.ErrDecodeDocument, ""},
		{"yaml malformed", "name: [x\n", YAML, errs.ErrDecodeDocument, ""},
		{"toml unknown field", "name = \"x\"\n[[args]]\nname = \"a\"\nbogus = 1\n", TOML, errs.ErrUnknownField, "args.bogus"},
		{"toml malformed", "name = \n", TOML, errs.ErrDecodeDocument, ""},
		{"long short", "args:\n  - name: a\n    short: ab\n", YAML, errs.ErrInvalidField, "args[0].short"},
		{"long delimiter", "subcommands:\n  - name: s\n    args:\n      - name: a\n        delimiter: '::'\n",
			YAML, errs.ErrInvalidField, "subcommands[0].args[0].delimiter"},
		{"unknown setting", "settings: [no_such_thing]\n", YAML, errs.ErrUnknownSetting, "settings[0]"},
		{"unknown global setting", "subcommands:\n  - name: s\n    global_settings: [x]\n",
			YAML, errs.ErrUnknownSetting, "subcommands[0].global_settings[0]"},
		{"bad format", "", Format(9), errs.ErrUnsupportedFormat, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())

			var de *DocumentError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.path, de.Path)
			if tt.path != "" {
				assert.Contains(t, err.Error(), "at '"+tt.path+"'")
			}
		})
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	cmd, err := FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cmd.Name)
}

func TestDecode_DefinitionErrorsReachModel(t *testing.T) {
	cmd, err := FromYAML([]byte("name: x\nargs:\n  - name: a\n    requires: [ghost]\n"))
	require.NoError(t, err)

	_, err = argmatch.NewParser(cmd)
	assert.True(t, errors.Is(err, errs.ErrUnknownReference))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "cli.yml")
	tomlPath := filepath.Join(dir, "cli.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0o600))
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlDoc), 0o600))

	for _, path := range []string{yamlPath, tomlPath} {
		cmd, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "deploy", cmd.Name)
		assert.Equal(t, "2.0.0", cmd.Version)
	}

	_, err := FromFile(filepath.Join(dir, "cli.json"))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFormat))

	_, err = FromFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "yaml", YAML.String())
	assert.Equal(t, "toml", TOML.String())
	assert.Equal(t, "unknown", Format(0).String())

	f, err := FormatFromPath("a/b/CLI.YAML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
}
