// Package declarative builds argmatch command definitions from YAML or TOML documents.
//
// A document mirrors the builder API:
//
//	name: myprog
//	version: 1.0.0
//	settings: [subcommand_required]
//	args:
//	  - name: verbose
//	    short: v
//	    long: verbose
//	    global: true
//	subcommands:
//	  - name: run
//	    args:
//	      - name: target
//	        required: true
//
// Malformed documents are reported as *DocumentError, never by aborting.
package declarative

import (
	"fmt"
	"unicode/utf8"

	"github.com/napalu/argmatch"
	"github.com/napalu/argmatch/errs"
)

// Document is the root command or a subcommand
type Document struct {
	Name           string     `yaml:"name" toml:"name"`
	BinName        string     `yaml:"bin_name" toml:"bin_name"`
	Version        string     `yaml:"version" toml:"version"`
	About          string     `yaml:"about" toml:"about"`
	Aliases        []string   `yaml:"aliases" toml:"aliases"`
	VisibleAliases []string   `yaml:"visible_aliases" toml:"visible_aliases"`
	Settings       []string   `yaml:"settings" toml:"settings"`
	GlobalSettings []string   `yaml:"global_settings" toml:"global_settings"`
	Args           []ArgDoc   `yaml:"args" toml:"args"`
	Groups         []GroupDoc `yaml:"groups" toml:"groups"`
	Subcommands    []Document `yaml:"subcommands" toml:"subcommands"`
}

// ArgDoc describes one argument. A nil arity field keeps the builder default.
type ArgDoc struct {
	Name           string         `yaml:"name" toml:"name"`
	Short          string         `yaml:"short" toml:"short"`
	Long           string         `yaml:"long" toml:"long"`
	Index          int            `yaml:"index" toml:"index"`
	Help           string         `yaml:"help" toml:"help"`
	TakesValue     bool           `yaml:"takes_value" toml:"takes_value"`
	NumValues      *int           `yaml:"num_values" toml:"num_values"`
	MinValues      *int           `yaml:"min_values" toml:"min_values"`
	MaxValues      *int           `yaml:"max_values" toml:"max_values"`
	Delimiter      string         `yaml:"delimiter" toml:"delimiter"`
	Required       bool           `yaml:"required" toml:"required"`
	Multiple       bool           `yaml:"multiple" toml:"multiple"`
	Global         bool           `yaml:"global" toml:"global"`
	Hidden         bool           `yaml:"hidden" toml:"hidden"`
	Conflicts      []string       `yaml:"conflicts_with" toml:"conflicts_with"`
	Requires       []string       `yaml:"requires" toml:"requires"`
	RequiredUnless []ConditionDoc `yaml:"required_unless" toml:"required_unless"`
	RequiredIf     []ConditionDoc `yaml:"required_if" toml:"required_if"`
	Groups         []string       `yaml:"groups" toml:"groups"`
	PossibleValues []string       `yaml:"possible_values" toml:"possible_values"`
	Default        *string        `yaml:"default" toml:"default"`
}

// ConditionDoc names an argument and optionally one of its values
type ConditionDoc struct {
	Arg   string `yaml:"arg" toml:"arg"`
	Value string `yaml:"value" toml:"value"`
}

// GroupDoc describes an argument group
type GroupDoc struct {
	Name     string   `yaml:"name" toml:"name"`
	Members  []string `yaml:"members" toml:"members"`
	Required bool     `yaml:"required" toml:"required"`
	Multiple bool     `yaml:"multiple" toml:"multiple"`
}

// DocumentError reports a malformed document. Path locates the offending field, e.g.
// "subcommands[0].args[1].short"; it is empty when the document could not be decoded.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return errs.ErrDocumentContext.WithArgs(e.Path).Wrap(e.Err).Error()
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Command converts the document into a builder definition. Definition errors the
// builder itself detects are left to argmatch.NewModel.
func (d *Document) Command() (*argmatch.Command, error) {
	return d.command("")
}

func (d *Document) command(path string) (*argmatch.Command, error) {
	settings, err := parseSettings(join(path, "settings"), d.Settings)
	if err != nil {
		return nil, err
	}
	globalSettings, err := parseSettings(join(path, "global_settings"), d.GlobalSettings)
	if err != nil {
		return nil, err
	}

	cmd := argmatch.NewCommand(
		argmatch.WithCommandName(d.Name),
		argmatch.WithBinName(d.BinName),
		argmatch.WithVersion(d.Version),
		argmatch.WithAbout(d.About),
		argmatch.WithAliases(d.Aliases...),
		argmatch.WithVisibleAliases(d.VisibleAliases...),
		argmatch.WithSettings(settings...),
		argmatch.WithGlobalSettings(globalSettings...),
	)

	for i := range d.Args {
		arg, err := d.Args[i].argument(fmt.Sprintf("%s[%d]", join(path, "args"), i))
		if err != nil {
			return nil, err
		}
		cmd.Set(argmatch.WithArgs(arg))
	}
	for _, g := range d.Groups {
		cmd.Set(argmatch.WithArgGroups(argmatch.NewGroup(g.Name,
			argmatch.WithMembers(g.Members...),
			argmatch.SetGroupRequired(g.Required),
			argmatch.SetGroupMultiple(g.Multiple))))
	}
	for i := range d.Subcommands {
		sub, err := d.Subcommands[i].command(fmt.Sprintf("%s[%d]", join(path, "subcommands"), i))
		if err != nil {
			return nil, err
		}
		cmd.Set(argmatch.WithSubcommands(sub))
	}

	return cmd, nil
}

func (a *ArgDoc) argument(path string) (*argmatch.Argument, error) {
	short, err := singleRune(path, "short", a.Short)
	if err != nil {
		return nil, err
	}
	delimiter, err := singleRune(path, "delimiter", a.Delimiter)
	if err != nil {
		return nil, err
	}

	configs := []argmatch.ConfigureArgumentFunc{
		argmatch.WithName(a.Name),
		argmatch.WithShort(short),
		argmatch.WithLong(a.Long),
		argmatch.WithDescription(a.Help),
		argmatch.TakesValue(a.TakesValue),
		argmatch.WithDelimiter(delimiter),
		argmatch.SetRequired(a.Required),
		argmatch.SetMultiple(a.Multiple),
		argmatch.SetGlobal(a.Global),
		argmatch.SetHidden(a.Hidden),
		argmatch.WithConflicts(a.Conflicts...),
		argmatch.WithRequires(a.Requires...),
		argmatch.WithGroups(a.Groups...),
		argmatch.WithPossibleValues(a.PossibleValues...),
	}
	if a.Index != 0 {
		configs = append(configs, argmatch.WithIndex(a.Index))
	}
	if a.NumValues != nil {
		configs = append(configs, argmatch.WithNumValues(*a.NumValues))
	}
	if a.MinValues != nil {
		configs = append(configs, argmatch.WithMinValues(*a.MinValues))
	}
	if a.MaxValues != nil {
		configs = append(configs, argmatch.WithMaxValues(*a.MaxValues))
	}
	for _, c := range a.RequiredUnless {
		configs = append(configs, argmatch.WithRequiredUnlessValue(c.Arg, c.Value))
	}
	for _, c := range a.RequiredIf {
		configs = append(configs, argmatch.WithRequiredIf(c.Arg, c.Value))
	}
	if a.Default != nil {
		configs = append(configs, argmatch.WithDefaultValue(*a.Default))
	}

	arg := &argmatch.Argument{}
	if err := arg.Set(configs...); err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}

	return arg, nil
}

func parseSettings(path string, names []string) ([]argmatch.Setting, error) {
	settings := make([]argmatch.Setting, 0, len(names))
	for i, name := range names {
		s, err := argmatch.ParseSetting(name)
		if err != nil {
			return nil, &DocumentError{Path: fmt.Sprintf("%s[%d]", path, i), Err: err}
		}
		settings = append(settings, s)
	}
	return settings, nil
}

func singleRune(path, field, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, &DocumentError{
			Path: join(path, field),
			Err:  errs.ErrInvalidField.WithArgs(field, fmt.Sprintf("expected a single character, got %q", s)),
		}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
