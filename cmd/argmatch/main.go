// Command argmatch matches a command line against a YAML or TOML definition and prints
// the result.
//
//	argmatch [-v] [-f yaml|json] <DEFINITION> [--] [ARGS]...
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/napalu/argmatch"
	"github.com/napalu/argmatch/declarative"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const version = "0.1.0"

const (
	exitOK = iota
	exitFailure
	exitUsage
)

const formatEnv = "ARGMATCH_FORMAT"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func newCLI() *argmatch.Command {
	return argmatch.NewCommand(
		argmatch.WithCommandName("argmatch"),
		argmatch.WithVersion(version),
		argmatch.WithAbout("Matches a command line against a YAML or TOML definition"),
		argmatch.WithArgs(
			argmatch.NewArg(
				argmatch.WithName("verbose"),
				argmatch.WithShort('v'),
				argmatch.WithLong("verbose"),
				argmatch.WithDescription("log matching decisions to stderr")),
			argmatch.NewArg(
				argmatch.WithName("format"),
				argmatch.WithShort('f'),
				argmatch.WithLong("format"),
				argmatch.TakesValue(true),
				argmatch.WithPossibleValues("yaml", "json"),
				argmatch.WithDescription("output format, "+formatEnv+" is used when absent")),
			argmatch.NewArg(
				argmatch.WithName("no-color"),
				argmatch.WithLong("no-color"),
				argmatch.WithDescription("never color diagnostics")),
			argmatch.NewArg(
				argmatch.WithName("definition"),
				argmatch.SetRequired(true),
				argmatch.WithDescription("definition file (.yaml, .yml or .toml)")),
			argmatch.NewArg(
				argmatch.WithName("args"),
				argmatch.WithMinValues(0),
				argmatch.WithDescription("command line to match, put -- before it when it has flags")),
		))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli, err := argmatch.NewParser(newCLI())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	m, err := cli.Parse(args)
	if err != nil {
		return report(err, stdout, stderr, diagnosticColor(stderr, false))
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "argmatch"})
	if m.IsPresent("verbose") {
		logger.SetLevel(log.DebugLevel)
	}

	format, ok := m.Get("format")
	if !ok {
		format = os.Getenv(formatEnv)
	}
	if format == "" {
		format = "yaml"
	}
	if format != "yaml" && format != "json" {
		logger.Error("unsupported output format", "format", format, "env", formatEnv)
		return exitFailure
	}

	definition, _ := m.Get("definition")
	cmd, err := declarative.FromFile(definition)
	if err != nil {
		logger.Error("unable to load definition", "path", definition, "err", err)
		return exitFailure
	}
	parser, err := argmatch.NewParser(cmd, argmatch.WithLogger(logger))
	if err != nil {
		logger.Error("invalid definition", "path", definition, "err", err)
		return exitFailure
	}
	logger.Debug("definition loaded", "path", definition, "command", parser.Model().Root().Name())

	target := m.Values("args")
	if !parser.Model().Root().Settings().Has(argmatch.NoBinaryName) {
		target = append([]string{binName(cmd, definition)}, target...)
	}
	result, err := parser.Parse(target)
	if err != nil {
		return report(err, stdout, stderr, diagnosticColor(stderr, m.IsPresent("no-color")))
	}

	if err := write(stdout, format, newMatchReport(parser.Model(), result)); err != nil {
		logger.Error("unable to write result", "err", err)
		return exitFailure
	}

	return exitOK
}

// report prints a parse outcome. Help and version go to stdout and are not failures.
func report(err error, stdout, stderr io.Writer, c *color.Color) int {
	var pe *argmatch.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	if pe.Kind.IsInformational() {
		out := pe.Render()
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		fmt.Fprint(stdout, out)
		return exitOK
	}

	first, rest, _ := strings.Cut(pe.Render(), "\n")
	fmt.Fprintln(stderr, c.Sprint(first))
	fmt.Fprint(stderr, rest)
	return exitUsage
}

func diagnosticColor(w io.Writer, disabled bool) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	f, ok := w.(*os.File)
	if disabled || !ok || !term.IsTerminal(int(f.Fd())) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func binName(cmd *argmatch.Command, definition string) string {
	switch {
	case cmd.BinName != "":
		return cmd.BinName
	case cmd.Name != "":
		return cmd.Name
	}
	return strings.TrimSuffix(filepath.Base(definition), filepath.Ext(definition))
}

func write(w io.Writer, format string, r *matchReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
