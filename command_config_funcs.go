package argmatch

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithCommandName sets the name for the command. The name is used to identify the command and invoke it from the command line.
func WithCommandName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithBinName overrides the name shown for the root command in usage and help output
func WithBinName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.BinName = name
	}
}

// WithVersion sets the version reported by --version
func WithVersion(version string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Version = version
	}
}

// WithAbout sets the one-line description shown in help output
func WithAbout(about string) ConfigureCommandFunc {
	return func(command *Command) {
		command.About = about
	}
}

// WithAliases adds hidden alternative names
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = append(command.Aliases, aliases...)
	}
}

// WithVisibleAliases adds alternative names listed in help output
func WithVisibleAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.VisibleAliases = append(command.VisibleAliases, aliases...)
	}
}

// WithArgs adds arguments in declaration order
func WithArgs(args ...*Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.Args = append(command.Args, args...)
	}
}

// WithArgGroups adds argument groups
func WithArgGroups(groups ...*ArgGroup) ConfigureCommandFunc {
	return func(command *Command) {
		command.Groups = append(command.Groups, groups...)
	}
}

// WithSubcommands function takes a list of subcommands and associates them with a command.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}

// WithSettings adds settings which apply to this command only
func WithSettings(settings ...Setting) ConfigureCommandFunc {
	return func(command *Command) {
		command.Settings = command.Settings.With(settings...)
	}
}

// WithGlobalSettings adds settings which apply to this command and all its descendants
func WithGlobalSettings(settings ...Setting) ConfigureCommandFunc {
	return func(command *Command) {
		command.GlobalSettings = command.GlobalSettings.With(settings...)
	}
}

// FindArg returns the first argument named name declared directly on the command
func (c *Command) FindArg(name string) (*Argument, bool) {
	for _, a := range c.Args {
		if a != nil && a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// FindGroup returns the group named name declared directly on the command
func (c *Command) FindGroup(name string) (*ArgGroup, bool) {
	for _, g := range c.Groups {
		if g != nil && g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// FindSubcommand returns the direct subcommand whose name or alias is name
func (c *Command) FindSubcommand(name string) (*Command, bool) {
	for _, sub := range c.Subcommands {
		if sub == nil {
			continue
		}
		if sub.Name == name {
			return sub, true
		}
		for _, alias := range sub.Aliases {
			if alias == name {
				return sub, true
			}
		}
		for _, alias := range sub.VisibleAliases {
			if alias == name {
				return sub, true
			}
		}
	}
	return nil, false
}
