package argmatch

import (
	"fmt"
	"strings"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/i18n"
	"github.com/napalu/argmatch/internal/messages"
	"github.com/napalu/argmatch/internal/util"
)

// renderer produces usage lines, help pages and error diagnostics for the nodes of a
// Model. Its output depends only on the node, the optional match state and the
// message provider.
type renderer struct {
	bin      string
	provider i18n.MessageProvider
}

func (p *Parser) renderer(bin string) *renderer {
	return &renderer{bin: bin, provider: p.provider}
}

func (r *renderer) t(key string, args ...interface{}) string {
	msg := key
	if r.provider != nil {
		msg = r.provider.GetMessage(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// pathNames returns the command path of n with the binary name substituted for an
// unnamed root
func (r *renderer) pathNames(n *Node) []string {
	names := n.Path()
	if len(names) > 0 && names[0] == "" {
		if r.bin == "" {
			return names[1:]
		}
		names[0] = r.bin
	}
	return names
}

func (r *renderer) path(n *Node) string {
	return strings.Join(r.pathNames(n), " ")
}

// argUsage is the short display of s used in usage lines and messages:
// "<file>...", "--config <config>", "-d"
func (r *renderer) argUsage(s *argSpec) string {
	if s == nil {
		return ""
	}
	dots := ""
	if s.greedy() || s.max > 1 {
		dots = "..."
	}
	if s.positional() {
		return "<" + s.name + ">" + dots
	}

	form := "-" + string(s.short)
	if s.long != "" {
		form = "--" + s.long
	}
	if s.takesValue() {
		form += " <" + s.name + ">" + dots
	}
	return form
}

// usage builds the one-line synopsis of n. With st, optional arguments already
// matched are listed explicitly.
func (r *renderer) usage(n *Node, st *matchState) string {
	parts := []string{r.path(n)}
	if n.isHelp {
		return strings.Join(append(parts, "[SUBCOMMAND]..."), " ")
	}

	listed := make(map[string]bool)
	for _, s := range n.args {
		if s.positional() || s.hidden || !s.required {
			continue
		}
		parts = append(parts, r.argUsage(s))
		listed[s.name] = true
	}

	for _, g := range n.groups {
		if !g.required {
			continue
		}
		var members []string
		for _, name := range g.members {
			s := n.byName[name]
			if s == nil || s.hidden || listed[name] {
				continue
			}
			members = append(members, r.argUsage(s))
			listed[name] = true
		}
		if len(members) > 0 {
			parts = append(parts, "<"+strings.Join(members, "|")+">")
		}
	}

	if st != nil {
		for pair := st.args.Oldest(); pair != nil; pair = pair.Next() {
			s := pair.Value.(*argState).spec
			if s.positional() || s.hidden || listed[s.name] {
				continue
			}
			parts = append(parts, "["+r.argUsage(s)+"]")
			listed[s.name] = true
		}
	}

	var flags, options bool
	for _, s := range n.args {
		if s.positional() || s.hidden || listed[s.name] {
			continue
		}
		if s.takesValue() {
			options = true
		} else {
			flags = true
		}
	}
	if flags {
		parts = append(parts, "[FLAGS]")
	}
	if options {
		parts = append(parts, "[OPTIONS]")
	}

	for _, p := range n.positionals {
		if p.hidden {
			continue
		}
		if p.required {
			parts = append(parts, r.argUsage(p))
			continue
		}
		u := "[" + p.name + "]"
		if p.greedy() || p.max > 1 {
			u += "..."
		}
		parts = append(parts, u)
	}

	if len(n.children) > 0 {
		if n.settings.Has(SubcommandRequired) {
			parts = append(parts, "<SUBCOMMAND>")
		} else {
			parts = append(parts, "[SUBCOMMAND]")
		}
	}

	return strings.Join(parts, " ")
}

type helpRow struct {
	left  string
	right string
}

// help renders the full help page of n
func (r *renderer) help(n *Node) string {
	var b strings.Builder

	b.WriteString(r.version(n))
	b.WriteString("\n")
	if about := r.about(n); about != "" {
		b.WriteString(about)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.t(messages.MsgUsageKey))
	b.WriteString("\n    ")
	b.WriteString(r.usage(n, nil))
	b.WriteString("\n")

	var flags, options, positionals, subcommands []helpRow
	for _, s := range n.args {
		if s.hidden {
			continue
		}
		switch {
		case s.positional():
			positionals = append(positionals, helpRow{left: r.argUsage(s), right: r.describe(s)})
		case s.takesValue():
			options = append(options, helpRow{left: r.flagForms(s) + " <" + s.name + ">", right: r.describe(s)})
		default:
			flags = append(flags, helpRow{left: r.flagForms(s), right: r.describe(s)})
		}
	}
	for _, c := range n.children {
		about := r.about(c)
		if len(c.visibleAliases) > 0 {
			about = strings.TrimSpace(about + " [" + r.t(messages.MsgAliasesKey) + ": " + strings.Join(c.visibleAliases, ", ") + "]")
		}
		subcommands = append(subcommands, helpRow{left: c.name, right: about})
	}

	r.writeSection(&b, messages.MsgFlagsKey, flags)
	r.writeSection(&b, messages.MsgOptionsKey, options)
	r.writeSection(&b, messages.MsgArgsKey, positionals)
	r.writeSection(&b, messages.MsgSubcommandsKey, subcommands)

	return b.String()
}

func (r *renderer) writeSection(b *strings.Builder, headingKey string, rows []helpRow) {
	if len(rows) == 0 {
		return
	}
	width := 0
	for _, row := range rows {
		width = util.Max(width, len(row.left))
	}

	b.WriteString("\n")
	b.WriteString(r.t(headingKey))
	b.WriteString("\n")
	for _, row := range rows {
		line := fmt.Sprintf("    %-*s    %s", width, row.left, row.right)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
}

// flagForms renders "-c, --config", "-d" or "    --debug"
func (r *renderer) flagForms(s *argSpec) string {
	switch {
	case s.short != 0 && s.long != "":
		return "-" + string(s.short) + ", --" + s.long
	case s.short != 0:
		return "-" + string(s.short)
	}
	return "    --" + s.long
}

func (r *renderer) describe(s *argSpec) string {
	desc := s.description
	if s.descriptionKey != "" {
		desc = r.t(s.descriptionKey)
	}
	if s.hasDefault {
		desc += " [" + r.t(messages.MsgDefaultKey) + ": " + s.def + "]"
	}
	if len(s.possible) > 0 {
		desc += " [" + r.t(messages.MsgPossibleValuesKey) + ": " + strings.Join(s.possible, ", ") + "]"
	}
	return strings.TrimSpace(desc)
}

func (r *renderer) about(n *Node) string {
	if n.aboutKey != "" {
		return r.t(n.aboutKey)
	}
	return n.about
}

// version renders "path version"
func (r *renderer) version(n *Node) string {
	return strings.TrimSpace(r.path(n) + " " + n.version)
}

// renderError renders the diagnostic block of a matching or validation failure
func (r *renderer) renderError(pe *ParseError, n *Node) string {
	var b strings.Builder

	b.WriteString(r.t(messages.MsgErrorPrefixKey))
	b.WriteString(" ")
	b.WriteString(pe.Error())
	b.WriteString("\n")
	if pe.Suggestion != "" {
		b.WriteString("\n\t")
		b.WriteString(errs.ErrSuggestion.WithProvider(r.provider).WithArgs(pe.Suggestion).Error())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.t(messages.MsgUsageKey))
	b.WriteString("\n    ")
	b.WriteString(pe.Usage)
	b.WriteString("\n")

	if h := n.byName["help"]; h != nil && h.implicit == implicitHelp {
		b.WriteString("\n")
		b.WriteString(r.t(messages.MsgMoreInfoKey, "--help"))
		b.WriteString("\n")
	}

	return b.String()
}
