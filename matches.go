package argmatch

import (
	"time"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/util"
)

// Matches is the immutable result of a successful parse for one command of the chain
type Matches struct {
	name        string
	path        []string
	order       []string
	args        map[string]*argMatch
	positionals []string
	sub         *SubcommandMatch
}

// SubcommandMatch is the matched subcommand of a Matches and its own result
type SubcommandMatch struct {
	Name    string
	Matches *Matches
}

type argMatch struct {
	occurrences []Occurrence
	source      ValueSource
	def         string
	hasDefault  bool
	flag        bool
}

func (a *argMatch) values() []string {
	var vals []string
	for _, o := range a.occurrences {
		vals = append(vals, o.Values...)
	}
	if len(vals) == 0 && len(a.occurrences) == 0 && a.hasDefault {
		return []string{a.def}
	}
	return vals
}

// assemble freezes the states of the chain starting at st. Every argument visible in
// a node gets an entry so that unknown names can be told from absent ones.
func (m *matcher) assemble(st *matchState) *Matches {
	res := &Matches{
		name: st.node.name,
		path: m.r.pathNames(st.node),
		args: make(map[string]*argMatch, len(st.node.args)),
	}

	for pair := st.args.Oldest(); pair != nil; pair = pair.Next() {
		as := pair.Value.(*argState)
		if len(as.occurrences) == 0 {
			continue
		}
		occurrences := make([]Occurrence, len(as.occurrences))
		for i, o := range as.occurrences {
			occurrences[i] = Occurrence{Pos: o.Pos, Values: append([]string(nil), o.Values...)}
		}
		res.order = append(res.order, as.spec.name)
		res.args[as.spec.name] = &argMatch{occurrences: occurrences, source: as.source}
	}

	for _, s := range st.node.args {
		am, ok := res.args[s.name]
		if !ok {
			am = &argMatch{source: SourceNone}
			if s.hasDefault {
				am.source = SourceDefault
			}
			res.args[s.name] = am
		}
		am.def, am.hasDefault, am.flag = s.def, s.hasDefault, !s.takesValue()
	}
	for _, p := range st.node.positionals {
		res.positionals = append(res.positionals, p.name)
	}

	if st.sub != nil {
		res.sub = &SubcommandMatch{Name: st.sub.node.name, Matches: m.assemble(st.sub)}
	}

	return res
}

// Name returns the name of the matched command
func (m *Matches) Name() string { return m.name }

// Path returns the command path from the binary name to this command
func (m *Matches) Path() []string { return util.Clone(m.path) }

// IsPresent reports whether name was matched, or propagated from an ancestor
func (m *Matches) IsPresent(name string) bool {
	a, ok := m.args[name]
	return ok && len(a.occurrences) > 0
}

// Occurrences returns how many times name appeared
func (m *Matches) Occurrences(name string) int {
	if a, ok := m.args[name]; ok {
		return len(a.occurrences)
	}
	return 0
}

// Get returns the first value of name, falling back to its default value
func (m *Matches) Get(name string) (string, bool) {
	a, ok := m.args[name]
	if !ok {
		return "", false
	}
	vals := a.values()
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// GetOrDefault returns the first value of name or fallback when it has none
func (m *Matches) GetOrDefault(name, fallback string) string {
	if v, ok := m.Get(name); ok {
		return v
	}
	return fallback
}

// Values returns all values of name across its occurrences, in input order. An absent
// argument with a default yields the default alone.
func (m *Matches) Values(name string) []string {
	if a, ok := m.args[name]; ok {
		return a.values()
	}
	return nil
}

// ValueOccurrences returns the values of name grouped by occurrence
func (m *Matches) ValueOccurrences(name string) [][]string {
	a, ok := m.args[name]
	if !ok || len(a.occurrences) == 0 {
		return nil
	}
	grouped := make([][]string, len(a.occurrences))
	for i, o := range a.occurrences {
		grouped[i] = util.Clone(o.Values)
	}
	return grouped
}

// Positions returns the 1-based raw token position of each occurrence of name
func (m *Matches) Positions(name string) []int {
	a, ok := m.args[name]
	if !ok || len(a.occurrences) == 0 {
		return nil
	}
	positions := make([]int, len(a.occurrences))
	for i, o := range a.occurrences {
		positions[i] = o.Pos
	}
	return positions
}

// ValueSource tells where the values of name came from
func (m *Matches) ValueSource(name string) ValueSource {
	if a, ok := m.args[name]; ok {
		return a.source
	}
	return SourceNone
}

// Present returns the names of the matched arguments in order of first appearance
func (m *Matches) Present() []string { return util.Clone(m.order) }

func (m *Matches) value(name string) (string, error) {
	a, ok := m.args[name]
	if !ok {
		return "", errs.ErrArgumentNotFound.WithArgs(name)
	}
	vals := a.values()
	if len(vals) == 0 {
		return "", errs.ErrNoValue.WithArgs(name)
	}
	return vals[0], nil
}

// GetBool converts the value of name. A flag is true when present.
func (m *Matches) GetBool(name string) (bool, error) {
	a, ok := m.args[name]
	if !ok {
		return false, errs.ErrArgumentNotFound.WithArgs(name)
	}
	if a.flag && (len(a.occurrences) > 0 || !a.hasDefault) {
		return len(a.occurrences) > 0, nil
	}
	v, err := m.value(name)
	if err != nil {
		return false, err
	}
	return util.ToBool(v)
}

// GetInt converts the value of name to an integer
func (m *Matches) GetInt(name string) (int64, error) {
	v, err := m.value(name)
	if err != nil {
		return 0, err
	}
	return util.ToInt(v)
}

// GetFloat converts the value of name to a float
func (m *Matches) GetFloat(name string) (float64, error) {
	v, err := m.value(name)
	if err != nil {
		return 0, err
	}
	return util.ToFloat(v)
}

// GetDuration converts the value of name with time.ParseDuration
func (m *Matches) GetDuration(name string) (time.Duration, error) {
	v, err := m.value(name)
	if err != nil {
		return 0, err
	}
	return util.ToDuration(v)
}

// GetTime converts the value of name, accepting most common date and time layouts
func (m *Matches) GetTime(name string) (time.Time, error) {
	v, err := m.value(name)
	if err != nil {
		return time.Time{}, err
	}
	return util.ToTime(v)
}

// GetList splits every value of name on commas, semicolons, pipes or white space
func (m *Matches) GetList(name string) ([]string, error) {
	a, ok := m.args[name]
	if !ok {
		return nil, errs.ErrArgumentNotFound.WithArgs(name)
	}
	var list []string
	for _, v := range a.values() {
		list = append(list, util.SplitList(v, 0)...)
	}
	return list, nil
}

// Args returns the values of all positional arguments in index order
func (m *Matches) Args() []string {
	var vals []string
	for _, name := range m.positionals {
		if a := m.args[name]; len(a.occurrences) > 0 {
			vals = append(vals, a.values()...)
		}
	}
	return vals
}

// Subcommand returns the matched subcommand, if any
func (m *Matches) Subcommand() (*SubcommandMatch, bool) {
	return m.sub, m.sub != nil
}

// SubcommandMatches returns the result of the subcommand name if it was matched
func (m *Matches) SubcommandMatches(name string) (*Matches, bool) {
	if m.sub == nil || m.sub.Name != name {
		return nil, false
	}
	return m.sub.Matches, true
}

// SubcommandChain returns the names of the matched subcommands below this command
func (m *Matches) SubcommandChain() []string {
	var chain []string
	for s := m.sub; s != nil; s = s.Matches.sub {
		chain = append(chain, s.Name)
	}
	return chain
}

// Innermost returns the result of the deepest matched subcommand, or m itself
func (m *Matches) Innermost() *Matches {
	res := m
	for res.sub != nil {
		res = res.sub.Matches
	}
	return res
}
