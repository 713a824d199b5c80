package argmatch

import (
	"strings"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/i18n"
	"github.com/napalu/argmatch/internal/parse"
	"github.com/napalu/argmatch/internal/suggest"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Occurrence is one appearance of an argument: the raw position of the token which
// opened it and the values it supplied
type Occurrence struct {
	Pos    int
	Values []string
}

type argState struct {
	spec        *argSpec
	occurrences []Occurrence
	source      ValueSource
}

func (as *argState) valueCount() int {
	n := 0
	for _, o := range as.occurrences {
		n += len(o.Values)
	}
	return n
}

func (as *argState) values() []string {
	var vals []string
	for _, o := range as.occurrences {
		vals = append(vals, o.Values...)
	}
	return vals
}

func (as *argState) appendValues(vals ...string) {
	last := &as.occurrences[len(as.occurrences)-1]
	last.Values = append(last.Values, vals...)
}

// matchState is the mutable state of one node for one parse call
type matchState struct {
	node           *Node
	args           *orderedmap.OrderedMap
	sub            *matchState
	terminated     bool
	positionalSeen bool
}

func newMatchState(n *Node) *matchState {
	return &matchState{node: n, args: orderedmap.New()}
}

func (st *matchState) get(name string) *argState {
	v, ok := st.args.Get(name)
	if !ok {
		return nil
	}
	return v.(*argState)
}

func (st *matchState) present(name string) bool {
	as := st.get(name)
	return as != nil && len(as.occurrences) > 0
}

func (st *matchState) valueCount(name string) int {
	if as := st.get(name); as != nil {
		return as.valueCount()
	}
	return 0
}

// acceptsSubcommand reports whether a child name may currently be taken as a subcommand
func (st *matchState) acceptsSubcommand() bool {
	if st.terminated {
		return false
	}
	if st.node.settings.Has(ArgsNegateSubcommands) && st.positionalSeen {
		return false
	}
	for _, p := range st.node.positionals {
		n := st.valueCount(p.name)
		if p.required && n < p.min {
			return false
		}
		if p.greedy() && n > 0 {
			return false
		}
	}
	return true
}

// chain returns the states from st down to the innermost matched subcommand
func (st *matchState) chain() []*matchState {
	var states []*matchState
	for s := st; s != nil; s = s.sub {
		states = append(states, s)
	}
	return states
}

type matcher struct {
	p      *Parser
	r      *renderer
	bin    string
	stream *parse.Stream
}

func newMatcher(p *Parser, bin string, args []string) *matcher {
	return &matcher{
		p:      p,
		r:      p.renderer(bin),
		bin:    bin,
		stream: parse.NewStream(args, 1),
	}
}

// matchNode matches the remaining tokens against st.node, descending into the first
// recognised subcommand. Tokens after a subcommand name belong to the subcommand.
func (m *matcher) matchNode(st *matchState) error {
	if m.stream.Len() == 0 && st.node.settings.Has(ArgRequiredElseHelp) {
		return m.helpRequested(st, st.node)
	}

	var saturated *argSpec
	for {
		t, ok := m.stream.Next()
		if !ok {
			break
		}

		tok := classify(st, t)
		m.trace(st, tok)
		last := saturated
		saturated = nil

		var err error
		switch tok.kind {
		case tokenTerminator:
			st.terminated = true
		case tokenLong:
			saturated, err = m.matchLong(st, tok)
		case tokenShortCluster:
			saturated, err = m.matchCluster(st, tok)
		case tokenSubcommand:
			if err := m.checkPositionalArity(st); err != nil {
				return err
			}
			if tok.child.isHelp {
				return m.matchHelpPath(st)
			}
			st.sub = newMatchState(tok.child)
			return m.matchNode(st.sub)
		case tokenValue:
			err = m.matchPositional(st, tok, last)
		}
		if err != nil {
			return err
		}
	}

	if err := m.checkPositionalArity(st); err != nil {
		return err
	}
	if st.node.settings.Has(SubcommandRequired) && len(st.node.children) > 0 {
		return m.fail(st, &ParseError{
			Kind: MissingSubcommand,
			err:  m.tr(errs.ErrSubcommandExpected, m.r.path(st.node)),
		})
	}

	return nil
}

func (m *matcher) matchLong(st *matchState, tok token) (*argSpec, error) {
	s := tok.spec
	if s == nil {
		name := "--" + tok.name
		return nil, m.unknownArgument(st, name, suggest.Best(name, st.node.longForms()))
	}
	if s.implicit != implicitNone {
		return nil, m.implicit(st, s)
	}

	as, err := m.openOccurrence(st, s, tok.raw.Pos)
	if err != nil {
		return nil, err
	}
	if !s.takesValue() {
		if tok.hasValue {
			return nil, m.unexpectedValue(st, s, tok.value)
		}
		return nil, nil
	}
	if tok.hasValue {
		return m.attachValue(st, as, tok.value)
	}

	return m.consumeValues(st, as)
}

func (m *matcher) matchCluster(st *matchState, tok token) (*argSpec, error) {
	c := newCluster(st.node, tok.name)
	for {
		item, ok := c.next()
		if !ok {
			return nil, nil
		}
		if item.kind == itemUnknown {
			return nil, m.unknownArgument(st, "-"+string(item.short), "")
		}
		m.p.logger.Debug("short", "flag", string(item.short), "arg", item.spec.name, "node", m.r.path(st.node))
		if item.spec.implicit != implicitNone {
			return nil, m.implicit(st, item.spec)
		}

		as, err := m.openOccurrence(st, item.spec, tok.raw.Pos)
		if err != nil {
			return nil, err
		}

		switch item.kind {
		case itemFlag:
			continue
		case itemUnexpectedValue:
			return nil, m.unexpectedValue(st, item.spec, item.value)
		case itemAmbiguous:
			return nil, m.fail(st, &ParseError{
				Kind:     TooFewValues,
				Argument: item.spec.name,
				Value:    tok.raw.Value,
				err:      m.tr(errs.ErrAmbiguousCluster, item.spec.String(), tok.raw.Value),
			})
		}
		if item.hasValue {
			return m.attachValue(st, as, item.value)
		}
		return m.consumeValues(st, as)
	}
}

// openOccurrence starts a new occurrence of s, replacing or rejecting an earlier one
// when s does not allow multiple occurrences
func (m *matcher) openOccurrence(st *matchState, s *argSpec, pos int) (*argState, error) {
	as := st.get(s.name)
	if as == nil {
		as = &argState{spec: s, source: SourceCommandLine}
		st.args.Set(s.name, as)
	}
	if len(as.occurrences) > 0 && !s.multiple {
		if !st.node.settings.Has(AllArgsOverrideSelf) {
			return nil, m.fail(st, &ParseError{
				Kind:     ArgumentConflict,
				Argument: s.name,
				Other:    s.name,
				err:      m.tr(errs.ErrRepeatedArgument, s.String()),
			})
		}
		as.occurrences = as.occurrences[:0]
	}
	as.occurrences = append(as.occurrences, Occurrence{Pos: pos})

	return as, nil
}

// attachValue stores a value given in the same token as its flag ("--opt=v", "-ov").
// No further tokens are consumed.
func (m *matcher) attachValue(st *matchState, as *argState, v string) (*argSpec, error) {
	s := as.spec
	vals := splitValue(s, v)
	if s.max != Unbounded && len(vals) > s.max {
		return nil, m.tooManyValues(st, s, vals[s.max])
	}
	if len(vals) < s.min {
		return nil, m.tooFewValues(st, s, len(vals))
	}
	as.appendValues(vals...)
	if s.saturatedBy(len(vals)) {
		return s, nil
	}

	return nil, nil
}

// consumeValues takes value tokens following a flag until its maximum arity is reached
// or a flag, the terminator or (once the minimum is met) a subcommand name comes up
func (m *matcher) consumeValues(st *matchState, as *argState) (*argSpec, error) {
	s := as.spec
	count := 0
	for !s.saturatedBy(count) {
		t, ok := m.stream.Peek()
		if !ok || t.Value == "--" || looksLikeFlag(st.node, t.Value) {
			break
		}
		if count >= s.min {
			if _, isChild := st.node.childByName[t.Value]; isChild && st.acceptsSubcommand() {
				break
			}
		}
		m.stream.Next()

		vals := splitValue(s, t.Value)
		if s.max != Unbounded && count+len(vals) > s.max {
			return nil, m.tooManyValues(st, s, vals[s.max-count])
		}
		m.p.logger.Debug("value", "value", t.Value, "pos", t.Pos, "arg", s.name, "node", m.r.path(st.node))
		as.appendValues(vals...)
		count += len(vals)
	}

	if count < s.min {
		return nil, m.tooFewValues(st, s, count)
	}
	if s.saturatedBy(count) {
		return s, nil
	}

	return nil, nil
}

// matchPositional assigns a value to the first positional slot below its maximum.
// saturated is the option, if any, which reached its maximum on the previous token.
func (m *matcher) matchPositional(st *matchState, tok token, saturated *argSpec) error {
	for _, p := range st.node.positionals {
		count := st.valueCount(p.name)
		if p.saturatedBy(count) {
			continue
		}
		vals := splitValue(p, tok.value)
		if p.max != Unbounded && count+len(vals) > p.max {
			return m.tooManyValues(st, p, vals[p.max-count])
		}

		as := st.get(p.name)
		if as == nil {
			as = &argState{spec: p, source: SourceCommandLine, occurrences: []Occurrence{{Pos: tok.raw.Pos}}}
			st.args.Set(p.name, as)
		}
		as.appendValues(vals...)
		st.positionalSeen = true
		m.p.logger.Debug("positional", "value", tok.value, "pos", tok.raw.Pos, "arg", p.name, "node", m.r.path(st.node))

		return nil
	}

	if saturated != nil {
		return m.tooManyValues(st, saturated, tok.value)
	}

	return m.unknownArgument(st, tok.value, suggest.Best(tok.value, st.node.subcommandNames()))
}

// checkPositionalArity rejects a positional which received some but not enough values
func (m *matcher) checkPositionalArity(st *matchState) error {
	for _, p := range st.node.positionals {
		if n := st.valueCount(p.name); n > 0 && n < p.min {
			return m.tooFewValues(st, p, n)
		}
	}
	return nil
}

// matchHelpPath resolves the tokens following the help subcommand as a command path
func (m *matcher) matchHelpPath(st *matchState) error {
	target := st.node
	for _, t := range m.stream.Rest() {
		child, found := target.childByName[t.Value]
		if !found {
			return m.fail(st, &ParseError{
				Kind:       UnknownArgument,
				Argument:   t.Value,
				Suggestion: suggest.Best(t.Value, target.subcommandNames()),
				err:        m.tr(errs.ErrUnknownSubcommand, t.Value),
			})
		}
		target = child
	}

	return m.helpRequested(st, target)
}

func (m *matcher) implicit(st *matchState, s *argSpec) error {
	if s.implicit == implicitHelp {
		return m.helpRequested(st, st.node)
	}

	return m.fail(st, &ParseError{
		Kind:   VersionRequested,
		Output: m.r.version(st.node),
		err:    m.tr(errs.ErrVersion, m.r.path(st.node)),
	})
}

func (m *matcher) helpRequested(st *matchState, target *Node) error {
	pe := &ParseError{
		Kind:    HelpRequested,
		Command: m.r.pathNames(target),
		Output:  m.r.help(target),
		err:     m.tr(errs.ErrHelp, m.r.path(target)),
	}
	pe.Usage = m.r.usage(target, nil)
	pe.rendered = pe.Output

	return pe
}

func (m *matcher) unknownArgument(st *matchState, arg, suggestion string) error {
	return m.fail(st, &ParseError{
		Kind:       UnknownArgument,
		Argument:   arg,
		Suggestion: suggestion,
		err:        m.tr(errs.ErrUnexpectedArgument, arg),
	})
}

func (m *matcher) unexpectedValue(st *matchState, s *argSpec, v string) error {
	return m.fail(st, &ParseError{
		Kind:     TooManyValues,
		Argument: s.name,
		Value:    v,
		err:      m.tr(errs.ErrUnexpectedValue, s.String(), v),
	})
}

func (m *matcher) tooManyValues(st *matchState, s *argSpec, extra string) error {
	return m.fail(st, &ParseError{
		Kind:     TooManyValues,
		Argument: s.name,
		Value:    extra,
		err:      m.tr(errs.ErrExcessValues, s.String(), s.max, extra),
	})
}

func (m *matcher) tooFewValues(st *matchState, s *argSpec, got int) error {
	return m.fail(st, &ParseError{
		Kind:     TooFewValues,
		Argument: s.name,
		err:      m.tr(errs.ErrNotEnoughValues, s.String(), s.min, got),
	})
}

// fail completes pe with the context of st: command path, usage and rendered text
func (m *matcher) fail(st *matchState, pe *ParseError) *ParseError {
	if pe.Command == nil {
		pe.Command = m.r.pathNames(st.node)
	}
	if pe.Usage == "" {
		pe.Usage = m.r.usage(st.node, st)
	}
	if pe.rendered == "" {
		if pe.Kind.IsInformational() {
			pe.rendered = pe.Output
		} else {
			pe.rendered = m.r.renderError(pe, st.node)
		}
	}
	m.p.logger.Debug("fail", "kind", pe.Kind.String(), "arg", pe.Argument, "node", strings.Join(pe.Command, " "))

	return pe
}

func (m *matcher) tr(e *i18n.TrError, args ...interface{}) error {
	return e.WithProvider(m.p.provider).WithArgs(args...)
}

func (m *matcher) trace(st *matchState, tok token) {
	m.p.logger.Debug("token",
		"token", tok.raw.Value,
		"pos", tok.raw.Pos,
		"kind", tok.kind.String(),
		"node", m.r.path(st.node))
}
