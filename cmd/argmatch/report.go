package main

import (
	"github.com/napalu/argmatch"
)

type matchReport struct {
	Command    string       `json:"command" yaml:"command"`
	Path       []string     `json:"path" yaml:"path"`
	Args       []argReport  `json:"args,omitempty" yaml:"args,omitempty"`
	Subcommand *matchReport `json:"subcommand,omitempty" yaml:"subcommand,omitempty"`
}

type argReport struct {
	Name        string   `json:"name" yaml:"name"`
	Source      string   `json:"source" yaml:"source"`
	Occurrences int      `json:"occurrences" yaml:"occurrences"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// newMatchReport walks the matched chain. Arguments are listed in declaration order
// and skipped when they have neither occurrences nor a default.
func newMatchReport(model *argmatch.Model, m *argmatch.Matches) *matchReport {
	var (
		root  *matchReport
		last  *matchReport
		chain []string
	)
	for cur := m; cur != nil; {
		node, ok := model.Find(chain...)
		if !ok {
			break
		}

		r := &matchReport{Command: cur.Name(), Path: cur.Path()}
		for _, name := range node.ArgNames() {
			source := cur.ValueSource(name)
			if source == argmatch.SourceNone {
				continue
			}
			r.Args = append(r.Args, argReport{
				Name:        name,
				Source:      source.String(),
				Occurrences: cur.Occurrences(name),
				Values:      cur.Values(name),
			})
		}

		if root == nil {
			root = r
		} else {
			last.Subcommand = r
		}
		last = r

		sub, ok := cur.Subcommand()
		if !ok {
			break
		}
		chain = append(chain, sub.Name)
		cur = sub.Matches
	}

	return root
}
