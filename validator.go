package argmatch

import (
	"sort"
	"strings"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/util"
)

// validator checks the constraints of every node of a fully matched chain, parent first
type validator struct {
	m     *matcher
	chain []*matchState
}

func (m *matcher) validate(root *matchState) error {
	v := &validator{m: m, chain: root.chain()}
	for _, st := range v.chain {
		if err := v.validateNode(st); err != nil {
			return err
		}
	}
	return nil
}

// validateNode runs the checks in order; the first violation wins:
// required arguments, groups, conflicts, requirements, possible values.
func (v *validator) validateNode(st *matchState) error {
	negateReqs := st.sub != nil && st.node.settings.Has(SubcommandsNegateReqs)

	if !negateReqs {
		if err := v.checkRequired(st); err != nil {
			return err
		}
	}
	if err := v.checkGroups(st, negateReqs); err != nil {
		return err
	}
	if err := v.checkConflicts(st); err != nil {
		return err
	}
	if err := v.checkRequires(st); err != nil {
		return err
	}

	return v.checkPossibleValues(st)
}

func (v *validator) checkRequired(st *matchState) error {
	for _, s := range st.node.args {
		if !v.isRequired(st, s) || v.present(st, s.name) {
			continue
		}
		return v.m.fail(st, &ParseError{
			Kind:     MissingRequiredArgument,
			Argument: s.name,
			err:      v.m.tr(errs.ErrRequiredArgument, v.m.r.argUsage(s)),
		})
	}
	return nil
}

func (v *validator) isRequired(st *matchState, s *argSpec) bool {
	required := s.required
	for _, c := range s.requiredIf {
		if v.holds(st, c) {
			required = true
			break
		}
	}
	if !required {
		return false
	}
	for _, c := range s.requiredUnless {
		if v.holds(st, c) {
			return false
		}
	}
	return true
}

func (v *validator) checkGroups(st *matchState, negateReqs bool) error {
	for _, g := range st.node.groups {
		present := v.presentMembers(st, g)
		if len(present) == 0 && g.required && !negateReqs {
			members := make([]string, 0, len(g.members))
			for _, name := range g.members {
				members = append(members, v.m.r.argUsage(st.node.byName[name]))
			}
			return v.m.fail(st, &ParseError{
				Kind:     MissingRequiredArgument,
				Argument: g.name,
				err:      v.m.tr(errs.ErrRequiredGroup, g.name, strings.Join(members, ", ")),
			})
		}
		if len(present) > 1 && !g.multiple {
			return v.conflict(st, st.node.byName[present[0]], st.node.byName[present[1]])
		}
	}
	return nil
}

func (v *validator) checkConflicts(st *matchState) error {
	for _, s := range st.node.args {
		if len(s.conflicts) == 0 || !v.present(st, s.name) {
			continue
		}
		for _, name := range s.conflicts {
			if g, ok := st.node.groupByName[name]; ok {
				for _, member := range v.presentMembers(st, g) {
					if member != s.name {
						return v.conflict(st, s, st.node.byName[member])
					}
				}
				continue
			}
			if v.present(st, name) {
				return v.conflict(st, s, st.node.byName[name])
			}
		}
	}
	return nil
}

func (v *validator) checkRequires(st *matchState) error {
	for _, s := range st.node.args {
		if len(s.requires) == 0 || !v.present(st, s.name) {
			continue
		}
		for _, name := range s.requires {
			if v.present(st, name) {
				continue
			}
			dependency := name
			if dep, ok := st.node.byName[name]; ok {
				dependency = v.m.r.argUsage(dep)
			}
			return v.m.fail(st, &ParseError{
				Kind:     MissingRequiredArgument,
				Argument: name,
				Other:    s.name,
				err:      v.m.tr(errs.ErrMissingDependency, v.m.r.argUsage(s), dependency),
			})
		}
	}
	return nil
}

func (v *validator) checkPossibleValues(st *matchState) error {
	for pair := st.args.Oldest(); pair != nil; pair = pair.Next() {
		as := pair.Value.(*argState)
		if len(as.spec.possible) == 0 {
			continue
		}
		for _, val := range as.values() {
			if util.Contains(as.spec.possible, val) {
				continue
			}
			return v.m.fail(st, &ParseError{
				Kind:     InvalidValue,
				Argument: as.spec.name,
				Value:    val,
				Allowed:  util.Clone(as.spec.possible),
				err:      v.m.tr(errs.ErrValueNotAllowed, val, as.spec.String(), strings.Join(as.spec.possible, ", ")),
			})
		}
	}
	return nil
}

func (v *validator) conflict(st *matchState, a, b *argSpec) error {
	return v.m.fail(st, &ParseError{
		Kind:     ArgumentConflict,
		Argument: a.name,
		Other:    b.name,
		err:      v.m.tr(errs.ErrConflictingArgs, v.m.r.argUsage(a), v.m.r.argUsage(b)),
	})
}

// present reports whether name, an argument or a group, is present for st. A global
// argument counts as present when it was matched anywhere on the chain.
func (v *validator) present(st *matchState, name string) bool {
	if g, ok := st.node.groupByName[name]; ok {
		return len(v.presentMembers(st, g)) > 0
	}
	s, ok := st.node.byName[name]
	if !ok {
		return false
	}
	if st.present(name) {
		return true
	}
	if !s.global {
		return false
	}
	for _, other := range v.chain {
		if os, ok := other.node.byName[name]; ok && os.global && other.present(name) {
			return true
		}
	}
	return false
}

// presentMembers returns the present members of g by order of first appearance
func (v *validator) presentMembers(st *matchState, g *groupSpec) []string {
	var present []string
	for _, name := range g.members {
		if v.present(st, name) {
			present = append(present, name)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		return v.firstPos(st, present[i]) < v.firstPos(st, present[j])
	})
	return present
}

func (v *validator) firstPos(st *matchState, name string) int {
	for _, s := range v.chain {
		if as := s.get(name); as != nil && len(as.occurrences) > 0 && (s == st || as.spec.global) {
			return as.occurrences[0].Pos
		}
	}
	return 0
}

// holds reports whether the condition is met: c.Name present and, if c.Value is set,
// one of its values equal to c.Value
func (v *validator) holds(st *matchState, c Condition) bool {
	if !v.present(st, c.Name) {
		return false
	}
	if c.Value == "" {
		return true
	}
	for _, s := range v.chain {
		if s != st {
			if os, ok := s.node.byName[c.Name]; !ok || !os.global {
				continue
			}
		}
		if as := s.get(c.Name); as != nil && util.Contains(as.values(), c.Value) {
			return true
		}
	}
	return false
}
