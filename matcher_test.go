package argmatch

import (
	"errors"
	"testing"

	"github.com/napalu/argmatch/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProg(extra ...ConfigureCommandFunc) *Command {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithVersion("1.2.3"),
		WithAbout("test program"),
		WithArgs(
			NewArg(WithName("debug"), WithShort('d'), WithLong("debug"), WithDescription("enable debugging")),
			NewArg(WithName("a"), WithShort('a')),
			NewArg(WithName("b"), WithShort('b')),
			NewArg(WithName("c"), WithShort('c'), TakesValue(true)),
			NewArg(WithName("config"), WithLong("config"), TakesValue(true)),
			NewArg(WithName("verbose"), WithShort('v'), WithLong("verbose"), SetGlobal(true)),
		),
		WithSubcommands(
			NewCommand(
				WithCommandName("config"),
				WithAbout("manage configuration"),
				WithSubcommands(NewCommand(WithCommandName("show")))),
		),
	)
	cmd.Set(extra...)
	return cmd
}

func newTestParser(t *testing.T, cmd *Command, configs ...ConfigureParserFunc) *Parser {
	t.Helper()
	p, err := NewParser(cmd, configs...)
	require.NoError(t, err)
	return p
}

func mustParse(t *testing.T, p *Parser, args ...string) *Matches {
	t.Helper()
	m, err := p.Parse(append([]string{"myprog"}, args...))
	require.NoError(t, err)
	return m
}

func parseFail(t *testing.T, p *Parser, args ...string) *ParseError {
	t.Helper()
	_, err := p.Parse(append([]string{"myprog"}, args...))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
	return pe
}

func TestParse_ShortFlag(t *testing.T) {
	p := newTestParser(t, newTestProg())

	m := mustParse(t, p, "-d")
	assert.True(t, m.IsPresent("debug"))
	assert.Equal(t, 1, m.Occurrences("debug"))
	assert.Empty(t, m.Values("debug"))
	assert.Equal(t, SourceCommandLine, m.ValueSource("debug"))
}

func TestParse_LongWithAttachedValue(t *testing.T) {
	p := newTestParser(t, newTestProg())

	m := mustParse(t, p, "--config=file.txt")
	assert.Equal(t, []string{"file.txt"}, m.Values("config"))
}

func TestParse_LongWithSeparateValue(t *testing.T) {
	p := newTestParser(t, newTestProg())

	m := mustParse(t, p, "--config", "file.txt")
	v, ok := m.Get("config")
	assert.True(t, ok)
	assert.Equal(t, "file.txt", v)
}

func TestParse_ClusterValueFromNextToken(t *testing.T) {
	p := newTestParser(t, newTestProg())

	m := mustParse(t, p, "-abc", "42")
	assert.True(t, m.IsPresent("a"))
	assert.True(t, m.IsPresent("b"))
	assert.Equal(t, []string{"42"}, m.Values("c"))
	assert.Equal(t, []int{1}, m.Positions("c"))
}

func TestParse_ClusterAttachedValue(t *testing.T) {
	p := newTestParser(t, newTestProg())

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"attached", "-abcVALUE", "VALUE"},
		{"equals stripped once", "-c=x", "x"},
		{"double equals keeps one", "-c==x", "=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustParse(t, p, tt.arg)
			assert.Equal(t, []string{tt.want}, m.Values("c"))
		})
	}
}

func TestParse_AmbiguousCluster(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "-ac=")
	assert.Equal(t, TooFewValues, pe.Kind)
	assert.Equal(t, "c", pe.Argument)
	assert.True(t, errors.Is(pe, errs.ErrAmbiguousCluster))
	assert.True(t, errors.Is(pe, errs.ErrTooFewValues))
}

func TestParse_FlagWithValue(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "--debug=yes")
	assert.Equal(t, TooManyValues, pe.Kind)
	assert.Equal(t, "yes", pe.Value)

	pe = parseFail(t, p, "-d=yes")
	assert.Equal(t, TooManyValues, pe.Kind)
	assert.True(t, errors.Is(pe, errs.ErrUnexpectedValue))
}

func TestParse_UnknownArgument(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "--confg", "x")
	assert.Equal(t, UnknownArgument, pe.Kind)
	assert.Equal(t, "--confg", pe.Argument)
	assert.Equal(t, "--config", pe.Suggestion)
	assert.Equal(t, []string{"myprog"}, pe.Command)
	assert.True(t, errors.Is(pe, errs.ErrUnknownArgument))
	assert.False(t, pe.Kind.IsInformational())

	pe = parseFail(t, p, "-x")
	assert.Equal(t, UnknownArgument, pe.Kind)
	assert.Equal(t, "-x", pe.Argument)

	pe = parseFail(t, p, "stray")
	assert.Equal(t, UnknownArgument, pe.Kind)
	assert.Equal(t, "stray", pe.Argument)
}

func TestParse_UnknownSubcommandSuggestion(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "confg")
	assert.Equal(t, UnknownArgument, pe.Kind)
	assert.Equal(t, "config", pe.Suggestion)
}

func TestParse_SubcommandChain(t *testing.T) {
	p := newTestParser(t, newTestProg())

	m := mustParse(t, p, "config", "show", "--verbose")
	assert.Equal(t, []string{"config", "show"}, m.SubcommandChain())
	assert.False(t, m.IsPresent("verbose"))

	inner := m.Innermost()
	assert.Equal(t, "show", inner.Name())
	assert.Equal(t, []string{"myprog", "config", "show"}, inner.Path())
	assert.True(t, inner.IsPresent("verbose"))

	cfg, ok := m.SubcommandMatches("config")
	require.True(t, ok)
	sub, ok := cfg.Subcommand()
	require.True(t, ok)
	assert.Equal(t, "show", sub.Name)
}

func TestParse_SubcommandOwnsRemainingTokens(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "config", "-d")
	assert.Equal(t, UnknownArgument, pe.Kind)
	assert.Equal(t, []string{"myprog", "config"}, pe.Command)
}

func TestParse_ArityBounds(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(NewArg(WithName("file"), WithLong("file"), WithMinValues(1), WithMaxValues(3))))
	p := newTestParser(t, cmd)

	for _, vals := range [][]string{{"a"}, {"a", "b"}, {"a", "b", "c"}} {
		m := mustParse(t, p, append([]string{"--file"}, vals...)...)
		assert.Equal(t, vals, m.Values("file"))
	}

	pe := parseFail(t, p, "--file")
	assert.Equal(t, TooFewValues, pe.Kind)
	assert.Equal(t, "file", pe.Argument)
	assert.True(t, errors.Is(pe, errs.ErrNotEnoughValues))

	pe = parseFail(t, p, "--file", "a", "b", "c", "d")
	assert.Equal(t, TooManyValues, pe.Kind)
	assert.Equal(t, "file", pe.Argument)
	assert.Equal(t, "d", pe.Value)
}

func TestParse_ValueConsumptionStopsAtFlag(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(
			NewArg(WithName("file"), WithLong("file"), WithMinValues(2), WithMaxValues(3)),
			NewArg(WithName("debug"), WithShort('d'))))
	p := newTestParser(t, cmd)

	pe := parseFail(t, p, "--file", "a", "-d")
	assert.Equal(t, TooFewValues, pe.Kind)

	m := mustParse(t, p, "--file", "a", "b", "-d")
	assert.Equal(t, []string{"a", "b"}, m.Values("file"))
	assert.True(t, m.IsPresent("debug"))
}

func TestParse_DelimiterEquivalence(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(NewArg(WithName("list"), WithLong("list"), WithMinValues(1), WithDelimiter(','))))
	p := newTestParser(t, cmd)

	joined := mustParse(t, p, "--list", "a,b,c")
	separate := mustParse(t, p, "--list", "a", "b", "c")
	attached := mustParse(t, p, "--list=a,b,c")

	assert.Equal(t, []string{"a", "b", "c"}, joined.Values("list"))
	assert.Equal(t, joined.Values("list"), separate.Values("list"))
	assert.Equal(t, joined.Values("list"), attached.Values("list"))
}

func TestParse_DelimiterRespectsMaximum(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(NewArg(WithName("pair"), WithLong("pair"), WithNumValues(2), WithDelimiter(':'))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "--pair=k:v")
	assert.Equal(t, []string{"k", "v"}, m.Values("pair"))

	pe := parseFail(t, p, "--pair=a:b:c")
	assert.Equal(t, TooManyValues, pe.Kind)
	assert.Equal(t, "c", pe.Value)

	pe = parseFail(t, p, "--pair=a")
	assert.Equal(t, TooFewValues, pe.Kind)
}

func TestParse_Terminator(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(
			NewArg(WithName("debug"), WithLong("debug")),
			NewArg(WithName("rest"), WithMinValues(1))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "--", "--debug", "-x")
	assert.False(t, m.IsPresent("debug"))
	assert.Equal(t, []string{"--debug", "-x"}, m.Values("rest"))
	assert.Equal(t, []string{"--debug", "-x"}, m.Args())
}

func TestParse_LoneDashIsValue(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(NewArg(WithName("input"))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "-")
	assert.Equal(t, []string{"-"}, m.Values("input"))
}

func TestParse_Positionals(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(
			NewArg(WithName("src"), SetRequired(true)),
			NewArg(WithName("dst"), SetRequired(true)),
			NewArg(WithName("extra"), WithMinValues(0)),
			NewArg(WithName("debug"), WithShort('d'))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "a", "-d", "b", "c", "d")
	assert.Equal(t, []string{"a"}, m.Values("src"))
	assert.Equal(t, []string{"b"}, m.Values("dst"))
	assert.Equal(t, []string{"c", "d"}, m.Values("extra"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, m.Args())
	assert.Equal(t, []int{1}, m.Positions("src"))
	assert.Equal(t, []int{3}, m.Positions("dst"))
}

func TestParse_NegativeNumbers(t *testing.T) {
	newCmd := func(settings ...Setting) *Command {
		return NewCommand(
			WithCommandName("myprog"),
			WithSettings(settings...),
			WithArgs(NewArg(WithName("offset"), WithLong("offset"), TakesValue(true))))
	}

	pe := parseFail(t, newTestParser(t, newCmd()), "--offset", "-5")
	assert.Equal(t, TooFewValues, pe.Kind)

	m := mustParse(t, newTestParser(t, newCmd(AllowNegativeNumbers)), "--offset", "-5")
	assert.Equal(t, []string{"-5"}, m.Values("offset"))
}

func TestParse_RepeatedOccurrence(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "-d", "--debug")
	assert.Equal(t, ArgumentConflict, pe.Kind)
	assert.Equal(t, "debug", pe.Argument)
	assert.True(t, errors.Is(pe, errs.ErrRepeatedArgument))

	p = newTestParser(t, newTestProg(WithSettings(AllArgsOverrideSelf)))
	m := mustParse(t, p, "--config", "a", "--config", "b")
	assert.Equal(t, 1, m.Occurrences("config"))
	assert.Equal(t, []string{"b"}, m.Values("config"))
	assert.Equal(t, []int{3}, m.Positions("config"))
}

func TestParse_MultipleOccurrences(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(
			NewArg(WithName("verbose"), WithShort('v'), SetMultiple(true)),
			NewArg(WithName("file"), WithLong("file"), WithMinValues(1), WithMaxValues(2), SetMultiple(true))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "-vvv")
	assert.Equal(t, 3, m.Occurrences("verbose"))

	m = mustParse(t, p, "-v", "--file", "a", "b", "-v", "--file", "c")
	assert.Equal(t, 2, m.Occurrences("verbose"))
	assert.Equal(t, []int{1, 5}, m.Positions("verbose"))
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, m.ValueOccurrences("file"))
	assert.Equal(t, []string{"a", "b", "c"}, m.Values("file"))
}

func TestParse_HelpAndVersion(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "-d", "--help", "--bogus")
	assert.Equal(t, HelpRequested, pe.Kind)
	assert.True(t, pe.Kind.IsInformational())
	assert.True(t, errors.Is(pe, errs.ErrHelpRequested))
	assert.Contains(t, pe.Output, "myprog 1.2.3")
	assert.Contains(t, pe.Output, "USAGE:")
	assert.Equal(t, pe.Output, pe.Render())

	pe = parseFail(t, p, "-V")
	assert.Equal(t, VersionRequested, pe.Kind)
	assert.Equal(t, "myprog 1.2.3", pe.Output)
	assert.True(t, errors.Is(pe, errs.ErrVersionRequested))

	pe = parseFail(t, p, "config", "-h")
	assert.Equal(t, HelpRequested, pe.Kind)
	assert.Equal(t, []string{"myprog", "config"}, pe.Command)
}

func TestParse_HelpSubcommand(t *testing.T) {
	p := newTestParser(t, newTestProg())

	pe := parseFail(t, p, "help")
	assert.Equal(t, HelpRequested, pe.Kind)
	assert.Equal(t, []string{"myprog"}, pe.Command)

	pe = parseFail(t, p, "help", "config", "show")
	assert.Equal(t, HelpRequested, pe.Kind)
	assert.Equal(t, []string{"myprog", "config", "show"}, pe.Command)

	pe = parseFail(t, p, "help", "nope")
	assert.Equal(t, UnknownArgument, pe.Kind)
	assert.True(t, errors.Is(pe, errs.ErrUnknownSubcommand))
}

func TestParse_MissingSubcommand(t *testing.T) {
	p := newTestParser(t, newTestProg(WithSettings(SubcommandRequired)))

	pe := parseFail(t, p, "-d")
	assert.Equal(t, MissingSubcommand, pe.Kind)
	assert.True(t, errors.Is(pe, errs.ErrSubcommandExpected))

	m := mustParse(t, p, "config")
	assert.Equal(t, []string{"config"}, m.SubcommandChain())
}

func TestParse_ArgRequiredElseHelp(t *testing.T) {
	p := newTestParser(t, newTestProg(WithSettings(ArgRequiredElseHelp)))

	pe := parseFail(t, p)
	assert.Equal(t, HelpRequested, pe.Kind)

	mustParse(t, p, "-d")
}

func TestParse_ArgsNegateSubcommands(t *testing.T) {
	newCmd := func(settings ...Setting) *Command {
		return NewCommand(
			WithCommandName("myprog"),
			WithSettings(settings...),
			WithArgs(NewArg(WithName("target"), WithMinValues(0))),
			WithSubcommands(NewCommand(WithCommandName("run"))))
	}

	m := mustParse(t, newTestParser(t, newCmd()), "run")
	assert.Equal(t, []string{"run"}, m.SubcommandChain())

	m = mustParse(t, newTestParser(t, newCmd(ArgsNegateSubcommands)), "x", "run")
	assert.Empty(t, m.SubcommandChain())
	assert.Equal(t, []string{"x", "run"}, m.Values("target"))
}

func TestParse_RequiredPositionalTakesSubcommandName(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(NewArg(WithName("name"), SetRequired(true))),
		WithSubcommands(NewCommand(WithCommandName("run"))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "run")
	assert.Equal(t, []string{"run"}, m.Values("name"))
	assert.Empty(t, m.SubcommandChain())

	m = mustParse(t, p, "x", "run")
	assert.Equal(t, []string{"run"}, m.SubcommandChain())
}

func TestParse_SubcommandAliases(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithSubcommands(NewCommand(
			WithCommandName("remove"),
			WithAliases("rm"),
			WithVisibleAliases("del"))))
	p := newTestParser(t, cmd)

	for _, alias := range []string{"remove", "rm", "del"} {
		m := mustParse(t, p, alias)
		assert.Equal(t, []string{"remove"}, m.SubcommandChain())
	}
}

func TestParse_ImplicitShortsYield(t *testing.T) {
	cmd := NewCommand(
		WithCommandName("myprog"),
		WithArgs(NewArg(WithName("host"), WithShort('h'), TakesValue(true))))
	p := newTestParser(t, cmd)

	m := mustParse(t, p, "-h", "localhost")
	assert.Equal(t, []string{"localhost"}, m.Values("host"))

	pe := parseFail(t, p, "--help")
	assert.Equal(t, HelpRequested, pe.Kind)
}

func TestParse_NoBinaryName(t *testing.T) {
	p := newTestParser(t, newTestProg(WithSettings(NoBinaryName)))

	m, err := p.Parse([]string{"-d"})
	require.NoError(t, err)
	assert.True(t, m.IsPresent("debug"))
}

func TestParse_BinaryNameFallback(t *testing.T) {
	cmd := NewCommand(WithArgs(NewArg(WithName("debug"), WithShort('d'))))
	p := newTestParser(t, cmd)

	_, err := p.Parse([]string{"/usr/local/bin/tool", "-x"})
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{"tool"}, pe.Command)
	assert.Contains(t, pe.Usage, "tool ")
}

func TestParseString(t *testing.T) {
	p := newTestParser(t, newTestProg())

	m, err := p.ParseString(`myprog --config "my file.txt" -d`)
	require.NoError(t, err)
	assert.Equal(t, []string{"my file.txt"}, m.Values("config"))
	assert.True(t, m.IsPresent("debug"))
}
