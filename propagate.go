package argmatch

// propagate copies the matched values of global arguments from each node of the chain
// into its matched subcommand once any node from the root down to it resolves
// PropagateGlobalValuesDown. Copies go parent first so a value travels down the whole
// chain. A subcommand which matched the argument itself keeps its own occurrences.
func (m *matcher) propagate(root *matchState) {
	enabled := false
	for st := root; st != nil && st.sub != nil; st = st.sub {
		enabled = enabled || st.node.settings.Has(PropagateGlobalValuesDown)
		if !enabled {
			continue
		}
		child := st.sub
		for pair := st.args.Oldest(); pair != nil; pair = pair.Next() {
			as := pair.Value.(*argState)
			if !as.spec.global || len(as.occurrences) == 0 {
				continue
			}
			cs, ok := child.node.byName[as.spec.name]
			if !ok || !cs.inherited || child.present(cs.name) {
				continue
			}

			occurrences := make([]Occurrence, len(as.occurrences))
			for i, o := range as.occurrences {
				occurrences[i] = Occurrence{Pos: o.Pos, Values: append([]string(nil), o.Values...)}
			}
			child.args.Set(cs.name, &argState{spec: cs, occurrences: occurrences, source: SourcePropagated})
			m.p.logger.Debug("propagate", "arg", cs.name, "from", m.r.path(st.node), "node", m.r.path(child.node))
		}
	}
}
