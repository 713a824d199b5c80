// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argmatch matches command lines against a declarative tree of arguments,
// argument groups and subcommands.
//
// A definition is assembled with NewCommand, NewArg and NewGroup, validated once into an
// immutable Model and matched by a Parser:
//
//	cmd := argmatch.NewCommand(
//		argmatch.WithCommandName("myprog"),
//		argmatch.WithArgs(
//			argmatch.NewArg(argmatch.WithName("debug"), argmatch.WithShort('d')),
//			argmatch.NewArg(argmatch.WithName("config"), argmatch.WithLong("config"), argmatch.TakesValue(true)),
//		))
//	parser, err := argmatch.NewParser(cmd)
//	if err != nil {
//		return err
//	}
//	matches, err := parser.Parse(os.Args)
//
// Every unsuccessful outcome is a *ParseError. Help and version requests are reported the
// same way with an informational Kind so the caller can print ParseError.Render and exit
// successfully.
package argmatch

import (
	"path/filepath"
	"strings"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/i18n"
	"github.com/napalu/argmatch/internal/parse"
	"golang.org/x/text/language"
)

// NewParser validates cmd into a Model and returns a Parser for it. The Parser can be
// used concurrently; cmd may be modified afterwards without affecting it.
func NewParser(cmd *Command, configs ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{
		logger: nopLogger{},
		bundle: i18n.Default(),
		lang:   language.English,
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}
	p.provider = i18n.NewLanguageProvider(p.bundle, p.lang)

	model, err := NewModel(cmd)
	if err != nil {
		return nil, err
	}
	p.model = model

	return p, nil
}

// Model returns the validated definition the parser matches against
func (p *Parser) Model() *Model {
	return p.model
}

// Parse matches args. Unless the root command sets NoBinaryName, args[0] is the binary
// name used in messages when the root command has no name.
func (p *Parser) Parse(args []string) (*Matches, error) {
	root := p.model.root
	bin := ""
	if !root.settings.Has(NoBinaryName) && len(args) > 0 {
		bin = filepath.Base(args[0])
		args = args[1:]
	}

	m := newMatcher(p, bin, args)
	st := newMatchState(root)
	if err := m.matchNode(st); err != nil {
		return nil, err
	}
	if err := m.validate(st); err != nil {
		return nil, err
	}
	m.propagate(st)

	return m.assemble(st), nil
}

// ParseString splits s with shell quoting rules and matches the result
func (p *Parser) ParseString(s string) (*Matches, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

// Usage returns the usage line of the command at path
func (p *Parser) Usage(path ...string) (string, error) {
	n, err := p.find(path)
	if err != nil {
		return "", err
	}

	return p.renderer("").usage(n, nil), nil
}

// Help returns the help page of the command at path
func (p *Parser) Help(path ...string) (string, error) {
	n, err := p.find(path)
	if err != nil {
		return "", err
	}

	return p.renderer("").help(n), nil
}

func (p *Parser) find(path []string) (*Node, error) {
	n, ok := p.model.Find(path...)
	if !ok {
		return nil, errs.ErrUnknownSubcommand.WithProvider(p.provider).WithArgs(strings.Join(path, " "))
	}
	return n, nil
}
