package argmatch

// IsPositional reports whether the argument is matched by position
func (a *Argument) IsPositional() bool {
	return a.Index > 0 || (a.Short == 0 && a.Long == "")
}

// String returns the form used in messages: --long, -s or <name>
func (a *Argument) String() string {
	return displayName(a.Name, a.Short, a.Long, a.IsPositional())
}

func displayName(name string, short rune, long string, positional bool) string {
	switch {
	case positional:
		return "<" + name + ">"
	case long != "":
		return "--" + long
	case short != 0:
		return "-" + string(short)
	}
	return name
}

// arity resolves the min/max values of a per occurrence
func (a *Argument) arity() (minValues, maxValues int) {
	switch {
	case a.minSet && a.maxSet:
		return a.MinValues, a.MaxValues
	case a.minSet:
		return a.MinValues, Unbounded
	case a.maxSet:
		if a.MaxValues == 0 {
			return 0, 0
		}
		return 1, a.MaxValues
	case a.IsPositional() || a.TakesValue:
		return 1, 1
	}
	return 0, 0
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
