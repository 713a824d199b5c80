package argmatch

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/argmatch/errs"
)

// Setting is a single behaviour switch of a command
type Setting uint32

const (
	// SubcommandRequired fails with MissingSubcommand when no subcommand is matched
	SubcommandRequired Setting = 1 << iota
	// PropagateGlobalValuesDown copies matched global values into every matched descendant
	PropagateGlobalValuesDown
	// AllArgsOverrideSelf replaces an earlier occurrence instead of failing on repetition
	AllArgsOverrideSelf
	// ArgRequiredElseHelp reports HelpRequested when the command receives no tokens
	ArgRequiredElseHelp
	// ArgsNegateSubcommands stops recognising subcommands once a positional value was matched
	ArgsNegateSubcommands
	// SubcommandsNegateReqs skips required checks of a command whose subcommand was matched
	SubcommandsNegateReqs
	// AllowNegativeNumbers treats -<number> as a value
	AllowNegativeNumbers
	// NoBinaryName means the first argument is not the binary name
	NoBinaryName
	// DisableHelpFlag suppresses the implicit --help/-h flag
	DisableHelpFlag
	// DisableVersionFlag suppresses the implicit --version/-V flag
	DisableVersionFlag
	// DisableHelpSubcommand suppresses the implicit help subcommand
	DisableHelpSubcommand
	// VersionlessSubcommands suppresses the implicit version flag of all descendants
	VersionlessSubcommands
	// GlobalVersion gives descendants without a version the version of their parent
	GlobalVersion
)

var settingNames = []struct {
	setting Setting
	name    string
}{
	{SubcommandRequired, "SubcommandRequired"},
	{PropagateGlobalValuesDown, "PropagateGlobalValuesDown"},
	{AllArgsOverrideSelf, "AllArgsOverrideSelf"},
	{ArgRequiredElseHelp, "ArgRequiredElseHelp"},
	{ArgsNegateSubcommands, "ArgsNegateSubcommands"},
	{SubcommandsNegateReqs, "SubcommandsNegateReqs"},
	{AllowNegativeNumbers, "AllowNegativeNumbers"},
	{NoBinaryName, "NoBinaryName"},
	{DisableHelpFlag, "DisableHelpFlag"},
	{DisableVersionFlag, "DisableVersionFlag"},
	{DisableHelpSubcommand, "DisableHelpSubcommand"},
	{VersionlessSubcommands, "VersionlessSubcommands"},
	{GlobalVersion, "GlobalVersion"},
}

func (s Setting) String() string {
	for _, n := range settingNames {
		if n.setting == s {
			return n.name
		}
	}
	return "Setting(unknown)"
}

// ParseSetting returns the setting named s. CamelCase, snake_case and kebab-case
// spellings are accepted, e.g. "SubcommandRequired", "subcommand_required" or
// "subcommand-required".
func ParseSetting(s string) (Setting, error) {
	want := strcase.ToSnake(strings.TrimSpace(s))
	for _, n := range settingNames {
		if strcase.ToSnake(n.name) == want {
			return n.setting, nil
		}
	}

	return 0, errs.ErrUnknownSetting.WithArgs(s)
}

// Settings is a set of Setting values
type Settings uint32

// NewSettings returns the set holding settings
func NewSettings(settings ...Setting) Settings {
	var s Settings
	return s.With(settings...)
}

// Has reports whether setting is in the set
func (s Settings) Has(setting Setting) bool {
	return uint32(s)&uint32(setting) != 0
}

// With returns a copy of the set with settings added
func (s Settings) With(settings ...Setting) Settings {
	for _, setting := range settings {
		s |= Settings(setting)
	}
	return s
}

// Without returns a copy of the set with settings removed
func (s Settings) Without(settings ...Setting) Settings {
	for _, setting := range settings {
		s &^= Settings(setting)
	}
	return s
}

// List returns the settings in the set in declaration order
func (s Settings) List() []Setting {
	var list []Setting
	for _, n := range settingNames {
		if s.Has(n.setting) {
			list = append(list, n.setting)
		}
	}
	return list
}

func (s Settings) String() string {
	names := make([]string, 0, len(settingNames))
	for _, setting := range s.List() {
		names = append(names, setting.String())
	}
	return strings.Join(names, "|")
}
