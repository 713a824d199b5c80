package argmatch

// NewGroup creates a named argument group
func NewGroup(name string, configs ...ConfigureGroupFunc) *ArgGroup {
	group := &ArgGroup{Name: name}
	var err error
	for _, config := range configs {
		config(group, &err)
		if err != nil && group.err == nil {
			group.err = err
		}
	}

	return group
}

// Set applies configs to the group, returning the first configuration error
func (g *ArgGroup) Set(configs ...ConfigureGroupFunc) error {
	var err error
	for _, config := range configs {
		config(g, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithMembers adds arguments to the group by name
func WithMembers(names ...string) ConfigureGroupFunc {
	return func(group *ArgGroup, err *error) {
		group.Members = append(group.Members, names...)
	}
}

// SetGroupRequired when true, at least one member must be present
func SetGroupRequired(required bool) ConfigureGroupFunc {
	return func(group *ArgGroup, err *error) {
		group.Required = required
	}
}

// SetGroupMultiple when true, more than one member may be present
func SetGroupMultiple(multiple bool) ConfigureGroupFunc {
	return func(group *ArgGroup, err *error) {
		group.Multiple = multiple
	}
}
