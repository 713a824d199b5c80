package argmatch

import (
	"fmt"

	"github.com/napalu/argmatch/errs"
)

// NewArg convenience initialization method to configure arguments. A configuration
// error is kept on the argument and reported when the Model is built.
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	var err error
	for _, config := range configs {
		config(argument, &err)
		if err != nil && argument.err == nil {
			argument.err = err
		}
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{}
//	err := arg.Set(
//	    WithLong("config"),
//	    WithDescription("path to the configuration file"),
//	    TakesValue(true),
//	    SetRequired(true),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithName sets the key under which the argument is reported in Matches
func WithName(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Name = name
	}
}

// WithShort sets the single character form, matched as -c and inside clusters like -abc
func WithShort(short rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Short = short
	}
}

// WithLong sets the long form, matched as --long, --long value and --long=value
func WithLong(long string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Long = long
	}
}

// WithIndex makes the argument positional at index (starting at 1)
func WithIndex(index int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if index < 1 {
			*err = errs.ErrInvalidArity.WithArgs(argument.Name, index, index).Wrap(fmt.Errorf("index must be >= 1"))
			return
		}
		argument.Index = index
	}
}

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// TakesValue turns a flag into an option expecting one value
func TakesValue(takesValue bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TakesValue = takesValue
	}
}

// WithNumValues requires exactly n values per occurrence
func WithNumValues(n int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if n < 0 {
			*err = errs.ErrInvalidArity.WithArgs(argument.Name, n, n)
			return
		}
		argument.MinValues, argument.MaxValues = n, n
		argument.minSet, argument.maxSet = true, true
		argument.TakesValue = n > 0
	}
}

// WithMinValues sets the minimum number of values per occurrence. Without an explicit
// maximum the argument becomes unbounded.
func WithMinValues(n int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if n < 0 {
			*err = errs.ErrInvalidArity.WithArgs(argument.Name, n, argument.MaxValues)
			return
		}
		argument.MinValues = n
		argument.minSet = true
		argument.TakesValue = true
	}
}

// WithMaxValues sets the maximum number of values per occurrence; use Unbounded for no limit
func WithMaxValues(n int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if n < 0 && n != Unbounded {
			*err = errs.ErrInvalidArity.WithArgs(argument.Name, argument.MinValues, n)
			return
		}
		argument.MaxValues = n
		argument.maxSet = true
		argument.TakesValue = n != 0
	}
}

// WithDelimiter splits every value token on delimiter
func WithDelimiter(delimiter rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Delimiter = delimiter
	}
}

// SetRequired when true, the argument must be supplied on the command-line
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// SetMultiple when true, the argument may occur more than once
func SetMultiple(multiple bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Multiple = multiple
	}
}

// SetGlobal when true, the argument is visible in every descendant subcommand
func SetGlobal(global bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Global = global
	}
}

// SetHidden when true, the argument is left out of usage and help output
func SetHidden(hidden bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Hidden = hidden
	}
}

// WithConflicts names arguments or groups which must not be present together with this
// argument. The check is one-sided: declare the conflict on both arguments to have
// either side reported.
func WithConflicts(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Conflicts = append(argument.Conflicts, names...)
	}
}

// WithRequires names arguments or groups which must be present when this argument is
func WithRequires(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Requires = append(argument.Requires, names...)
	}
}

// WithRequiredUnless lifts the required flag while any of the named arguments is present
func WithRequiredUnless(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, name := range names {
			argument.RequiredUnless = append(argument.RequiredUnless, Condition{Name: name})
		}
	}
}

// WithRequiredUnlessValue lifts the required flag while name is present with value
func WithRequiredUnlessValue(name, value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequiredUnless = append(argument.RequiredUnless, Condition{Name: name, Value: value})
	}
}

// WithRequiredIf makes the argument required while name is present with value. An empty
// value matches any presence of name.
func WithRequiredIf(name, value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequiredIf = append(argument.RequiredIf, Condition{Name: name, Value: value})
	}
}

// WithGroups adds the argument to the named groups. Groups which are not declared on the
// command are created on the fly.
func WithGroups(groups ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Groups = append(argument.Groups, groups...)
	}
}

// WithPossibleValues restricts values to the given set
func WithPossibleValues(values ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.PossibleValues = append(argument.PossibleValues, values...)
	}
}

// WithDefaultValue sets the value reported when the argument is absent. A default does not
// count as presence.
func WithDefaultValue(value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = value
		argument.HasDefault = true
	}
}
