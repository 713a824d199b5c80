package argmatch

import (
	"github.com/napalu/argmatch/i18n"
	"golang.org/x/text/language"
)

// Unbounded as a maximum arity lets an argument consume any number of values.
// A positional argument with an unbounded maximum is "greedy".
const Unbounded = -1

// ConfigureArgumentFunc is used when defining arguments
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureGroupFunc is used when defining argument groups
type ConfigureGroupFunc func(group *ArgGroup, err *error)

// ConfigureCommandFunc is used when defining commands and subcommands
type ConfigureCommandFunc func(command *Command)

// ConfigureParserFunc is used when creating a Parser
type ConfigureParserFunc func(parser *Parser, err *error)

// Logger receives a debug trace of matching decisions. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}

// Condition names an argument and, optionally, one of its values. It holds when the
// argument is present and, if Value is not empty, one of its values equals Value.
type Condition struct {
	Name  string
	Value string
}

// Argument defines a flag, an option or a positional argument.
//
// An argument with neither a short nor a long form and no index is positional and is
// given the next free index. Arity defaults to 0..0 for flags, 1..1 for options
// (TakesValue) and 1..1 for positionals.
type Argument struct {
	Name           string
	Short          rune
	Long           string
	Index          int
	Description    string
	TakesValue     bool
	MinValues      int
	MaxValues      int
	Delimiter      rune
	Required       bool
	Multiple       bool
	Global         bool
	Hidden         bool
	Conflicts      []string
	Requires       []string
	RequiredUnless []Condition
	RequiredIf     []Condition
	Groups         []string
	PossibleValues []string
	DefaultValue   string
	HasDefault     bool

	minSet bool
	maxSet bool
	err    error
}

// ArgGroup is a named set of arguments. A group which does not allow Multiple accepts at
// most one present member; a Required group needs at least one.
type ArgGroup struct {
	Name     string
	Members  []string
	Required bool
	Multiple bool

	err error
}

// Command defines the root command or a subcommand
type Command struct {
	Name           string
	BinName        string
	Version        string
	About          string
	Aliases        []string
	VisibleAliases []string
	Args           []*Argument
	Groups         []*ArgGroup
	Subcommands    []*Command
	Settings       Settings
	GlobalSettings Settings
}

// Parser matches command lines against an immutable Model. It is safe for concurrent use.
type Parser struct {
	model    *Model
	logger   Logger
	bundle   *i18n.Bundle
	lang     language.Tag
	provider i18n.MessageProvider
}

// ValueSource tells where the values of a matched argument came from
type ValueSource int

const (
	// SourceNone means the argument was not matched and has no default
	SourceNone ValueSource = iota
	// SourceDefault means the value is the declared default
	SourceDefault
	// SourceCommandLine means the argument was matched on the command line
	SourceCommandLine
	// SourcePropagated means the argument was matched by an ancestor command and copied down
	SourcePropagated
)

func (s ValueSource) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceCommandLine:
		return "command-line"
	case SourcePropagated:
		return "propagated"
	}
	return "none"
}
