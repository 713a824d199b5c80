package argmatch

import (
	"sort"
	"strings"
	"unicode"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/i18n"
	"github.com/napalu/argmatch/internal/messages"
	"github.com/napalu/argmatch/internal/util"
)

type implicitKind int

const (
	implicitNone implicitKind = iota
	implicitHelp
	implicitVersion
)

// argSpec is the resolved, read-only form of an Argument inside one Node
type argSpec struct {
	name           string
	short          rune
	long           string
	index          int
	description    string
	descriptionKey string
	min            int
	max            int
	delimiter      rune
	required       bool
	multiple       bool
	global         bool
	hidden         bool
	inherited      bool
	conflicts      []string
	requires       []string
	requiredUnless []Condition
	requiredIf     []Condition
	groups         []string
	possible       []string
	def            string
	hasDefault     bool
	implicit       implicitKind
}

func (s *argSpec) positional() bool { return s.index > 0 }
func (s *argSpec) takesValue() bool { return s.max != 0 }
func (s *argSpec) greedy() bool     { return s.max == Unbounded }

// saturatedBy reports whether n values reach the maximum arity
func (s *argSpec) saturatedBy(n int) bool {
	return s.max != Unbounded && n >= s.max
}

func (s *argSpec) String() string {
	return displayName(s.name, s.short, s.long, s.positional())
}

type groupSpec struct {
	name     string
	members  []string
	required bool
	multiple bool
}

// Node is one command of a Model. It is immutable once built.
type Node struct {
	name           string
	version        string
	about          string
	aboutKey       string
	aliases        []string
	visibleAliases []string
	path           []string
	settings       Settings
	isHelp         bool

	args        []*argSpec
	byName      map[string]*argSpec
	byShort     map[rune]*argSpec
	byLong      map[string]*argSpec
	positionals []*argSpec

	groups      []*groupSpec
	groupByName map[string]*groupSpec

	children    []*Node
	childByName map[string]*Node
}

// Name returns the command name
func (n *Node) Name() string { return n.name }

// Path returns the command names from the root to n
func (n *Node) Path() []string { return util.Clone(n.path) }

// Version returns the version, possibly inherited through GlobalVersion
func (n *Node) Version() string { return n.version }

// About returns the description of the command
func (n *Node) About() string { return n.about }

// Settings returns the resolved settings of the command
func (n *Node) Settings() Settings { return n.settings }

// Subcommands returns the child commands, including the implicit help command
func (n *Node) Subcommands() []*Node { return util.Clone(n.children) }

// Subcommand returns the child named or aliased name
func (n *Node) Subcommand(name string) (*Node, bool) {
	c, ok := n.childByName[name]
	return c, ok
}

// ArgNames returns the visible argument names in declaration order, inherited
// globals and implicit flags last
func (n *Node) ArgNames() []string {
	names := make([]string, 0, len(n.args))
	for _, a := range n.args {
		names = append(names, a.name)
	}
	return names
}

// Model is the validated, immutable definition tree consumed by the matcher.
// It may be shared by concurrent parses.
type Model struct {
	root *Node
}

// Root returns the root command
func (m *Model) Root() *Node { return m.root }

// Find resolves a path of subcommand names or aliases starting below the root
func (m *Model) Find(path ...string) (*Node, bool) {
	n := m.root
	for _, name := range path {
		c, ok := n.childByName[name]
		if !ok {
			return nil, false
		}
		n = c
	}
	return n, true
}

// BuildError reports an invalid definition. Err wraps one of the errs build sentinels.
type BuildError struct {
	Command  string
	Argument string
	Err      error
}

func (e *BuildError) Error() string {
	return errs.ErrBuildContext.WithArgs(e.Command).Wrap(e.Err).Error()
}

func (e *BuildError) Unwrap() error { return e.Err }

// ancestorView is the read-only set of global specs visible to a node being built
type ancestorView struct {
	globals  []*argSpec
	settings Settings
	version  string
}

// NewModel validates cmd and resolves it into an immutable Model. cmd is not retained.
func NewModel(cmd *Command) (*Model, error) {
	if cmd == nil {
		return nil, &BuildError{Err: errs.ErrNilCommand}
	}

	rootName := cmd.BinName
	if rootName == "" {
		rootName = cmd.Name
	}
	root, err := buildNode(cmd, []string{rootName}, ancestorView{})
	if err != nil {
		return nil, err
	}

	return &Model{root: root}, nil
}

func buildNode(cmd *Command, path []string, view ancestorView) (*Node, error) {
	n := &Node{
		name:           cmd.Name,
		version:        cmd.Version,
		about:          cmd.About,
		aliases:        util.Clone(cmd.Aliases),
		visibleAliases: util.Clone(cmd.VisibleAliases),
		path:           path,
		byName:         make(map[string]*argSpec),
		byShort:        make(map[rune]*argSpec),
		byLong:         make(map[string]*argSpec),
		groupByName:    make(map[string]*groupSpec),
		childByName:    make(map[string]*Node),
	}
	fail := func(arg string, err error) error {
		return &BuildError{Command: strings.Join(path, " "), Argument: arg, Err: err}
	}

	n.settings = cmd.Settings | cmd.GlobalSettings | view.settings
	if view.settings.Has(VersionlessSubcommands) {
		n.settings = n.settings.With(DisableVersionFlag)
	}
	if n.version == "" && view.settings.Has(GlobalVersion) {
		n.version = view.version
	}

	if err := n.addOwnArgs(cmd.Args); err != nil {
		return nil, fail(err.arg, err.err)
	}
	if err := n.inherit(view.globals); err != nil {
		return nil, fail(err.arg, err.err)
	}
	n.addImplicitFlags()
	if err := n.resolvePositionals(); err != nil {
		return nil, fail(err.arg, err.err)
	}
	if err := n.addGroups(cmd.Groups); err != nil {
		return nil, fail(err.arg, err.err)
	}
	if err := n.checkReferences(); err != nil {
		return nil, fail(err.arg, err.err)
	}

	childView := ancestorView{
		settings: cmd.GlobalSettings | view.settings,
		version:  n.version,
	}
	if n.settings.Has(VersionlessSubcommands) {
		childView.settings = childView.settings.With(VersionlessSubcommands)
	}
	if n.settings.Has(GlobalVersion) {
		childView.settings = childView.settings.With(GlobalVersion)
	}
	for _, a := range n.args {
		if a.global && !a.positional() {
			childView.globals = append(childView.globals, a)
		}
	}

	for _, sub := range cmd.Subcommands {
		if sub == nil {
			return nil, fail("", errs.ErrNilCommand)
		}
		if sub.Name == "" {
			return nil, fail("", errs.ErrEmptyName)
		}
		child, err := buildNode(sub, append(util.Clone(path), sub.Name), childView)
		if err != nil {
			return nil, err
		}
		if err := n.addChild(child); err != nil {
			return nil, fail("", err)
		}
	}

	if len(n.children) > 0 && !n.settings.Has(DisableHelpSubcommand) {
		if _, taken := n.childByName["help"]; !taken {
			_ = n.addChild(&Node{
				name:        "help",
				aboutKey:    messages.MsgHelpSubcommandKey,
				path:        append(util.Clone(path), "help"),
				isHelp:      true,
				byName:      map[string]*argSpec{},
				byShort:     map[rune]*argSpec{},
				byLong:      map[string]*argSpec{},
				groupByName: map[string]*groupSpec{},
				childByName: map[string]*Node{},
			})
		}
	}

	return n, nil
}

type specError struct {
	arg string
	err error
}

func specErr(arg string, err i18n.TranslatableError) *specError {
	return &specError{arg: arg, err: err}
}

func (n *Node) addOwnArgs(args []*Argument) *specError {
	autoIndex := 0
	for _, a := range args {
		if a == nil {
			continue
		}
		if a.err != nil {
			return &specError{arg: a.Name, err: a.err}
		}
		if a.Name == "" {
			return specErr("", errs.ErrEmptyName)
		}
		if _, dup := n.byName[a.Name]; dup {
			return specErr(a.Name, errs.ErrDuplicateArgument.WithArgs(a.Name))
		}

		minValues, maxValues := a.arity()
		s := &argSpec{
			name:           a.Name,
			short:          a.Short,
			long:           a.Long,
			index:          a.Index,
			description:    a.Description,
			min:            minValues,
			max:            maxValues,
			delimiter:      a.Delimiter,
			required:       a.Required,
			multiple:       a.Multiple,
			global:         a.Global,
			hidden:         a.Hidden,
			conflicts:      cloneStrings(a.Conflicts),
			requires:       cloneStrings(a.Requires),
			requiredUnless: append([]Condition(nil), a.RequiredUnless...),
			requiredIf:     append([]Condition(nil), a.RequiredIf...),
			groups:         cloneStrings(a.Groups),
			possible:       cloneStrings(a.PossibleValues),
			def:            a.DefaultValue,
			hasDefault:     a.HasDefault,
		}

		if a.IsPositional() {
			autoIndex++
			if s.index == 0 {
				s.index = autoIndex
			}
			if a.Short != 0 || a.Long != "" {
				return specErr(a.Name, errs.ErrPositionalWithFlag.WithArgs(a.Name))
			}
			if maxValues == 0 {
				return specErr(a.Name, errs.ErrInvalidArity.WithArgs(a.Name, minValues, maxValues))
			}
		}
		if maxValues != Unbounded && minValues > maxValues {
			return specErr(a.Name, errs.ErrInvalidArity.WithArgs(a.Name, minValues, maxValues))
		}
		if s.hasDefault && len(s.possible) > 0 && !util.Contains(s.possible, s.def) {
			return specErr(a.Name, errs.ErrInvalidDefault.WithArgs(s.def, a.Name))
		}
		if err := n.addSpec(s); err != nil {
			return err
		}
	}

	return nil
}

// addSpec registers s under its name, short and long forms
func (n *Node) addSpec(s *argSpec) *specError {
	if s.short != 0 {
		if s.short == '-' || s.short == '=' || unicode.IsSpace(s.short) || !unicode.IsPrint(s.short) {
			return specErr(s.name, errs.ErrInvalidShort.WithArgs(string(s.short), s.name))
		}
		if other, dup := n.byShort[s.short]; dup {
			return specErr(s.name, errs.ErrDuplicateShort.WithArgs(string(s.short), s.name, other.name))
		}
	}
	if s.long != "" {
		if strings.HasPrefix(s.long, "-") || strings.ContainsAny(s.long, "= \t\n") {
			return specErr(s.name, errs.ErrInvalidLong.WithArgs(s.long, s.name))
		}
		if other, dup := n.byLong[s.long]; dup {
			return specErr(s.name, errs.ErrDuplicateLong.WithArgs(s.long, s.name, other.name))
		}
	}

	n.args = append(n.args, s)
	n.byName[s.name] = s
	if s.short != 0 {
		n.byShort[s.short] = s
	}
	if s.long != "" {
		n.byLong[s.long] = s
	}
	if s.positional() {
		n.positionals = append(n.positionals, s)
	}

	return nil
}

// inherit copies ancestor globals which are not shadowed by a same-named own argument.
// Constraints of a global are checked where it is declared, so copies drop them.
func (n *Node) inherit(globals []*argSpec) *specError {
	for _, g := range globals {
		if _, shadowed := n.byName[g.name]; shadowed {
			continue
		}
		c := *g
		c.inherited = true
		c.required = false
		c.conflicts = nil
		c.requires = nil
		c.requiredUnless = nil
		c.requiredIf = nil
		c.groups = nil
		if err := n.addSpec(&c); err != nil {
			return err
		}
	}

	return nil
}

func (n *Node) addImplicitFlags() {
	if !n.settings.Has(DisableHelpFlag) && n.byName["help"] == nil && n.byLong["help"] == nil {
		s := &argSpec{name: "help", long: "help", descriptionKey: messages.MsgHelpFlagKey, implicit: implicitHelp}
		if n.byShort['h'] == nil {
			s.short = 'h'
		}
		_ = n.addSpec(s)
	}
	if !n.settings.Has(DisableVersionFlag) && n.byName["version"] == nil && n.byLong["version"] == nil {
		s := &argSpec{name: "version", long: "version", descriptionKey: messages.MsgVersionFlagKey, implicit: implicitVersion}
		if n.byShort['V'] == nil {
			s.short = 'V'
		}
		_ = n.addSpec(s)
	}
}

func (n *Node) resolvePositionals() *specError {
	sort.SliceStable(n.positionals, func(i, j int) bool {
		return n.positionals[i].index < n.positionals[j].index
	})

	for i, p := range n.positionals {
		if i > 0 && n.positionals[i-1].index == p.index {
			prev := n.positionals[i-1]
			return specErr(p.name, errs.ErrDuplicateIndex.WithArgs(p.index, prev.name, p.name))
		}
		if p.index != i+1 {
			return specErr(p.name, errs.ErrPositionalGap.WithArgs(i+1))
		}
		if p.greedy() && i != len(n.positionals)-1 {
			return specErr(p.name, errs.ErrGreedyNotLast.WithArgs(p.name))
		}
	}

	return nil
}

func (n *Node) addGroups(groups []*ArgGroup) *specError {
	for _, g := range groups {
		if g == nil {
			continue
		}
		if g.err != nil {
			return &specError{arg: g.Name, err: g.err}
		}
		if g.Name == "" {
			return specErr("", errs.ErrEmptyName)
		}
		if _, dup := n.groupByName[g.Name]; dup || n.byName[g.Name] != nil {
			return specErr(g.Name, errs.ErrDuplicateGroup.WithArgs(g.Name))
		}
		gs := &groupSpec{name: g.Name, required: g.Required, multiple: g.Multiple}
		for _, m := range g.Members {
			if n.byName[m] == nil {
				return specErr(g.Name, errs.ErrUnknownGroupMember.WithArgs(g.Name, m))
			}
		}
		gs.members = util.AppendUnique(gs.members, g.Members...)
		n.groups = append(n.groups, gs)
		n.groupByName[gs.name] = gs
	}

	for _, a := range n.args {
		for _, name := range a.groups {
			gs, ok := n.groupByName[name]
			if !ok {
				if n.byName[name] != nil {
					return specErr(a.name, errs.ErrDuplicateGroup.WithArgs(name))
				}
				gs = &groupSpec{name: name}
				n.groups = append(n.groups, gs)
				n.groupByName[name] = gs
			}
			gs.members = util.AppendUnique(gs.members, a.name)
		}
	}

	return nil
}

func (n *Node) checkReferences() *specError {
	known := func(name string) bool {
		return n.byName[name] != nil || n.groupByName[name] != nil
	}

	for _, a := range n.args {
		refs := append(append([]string(nil), a.conflicts...), a.requires...)
		for _, c := range a.requiredUnless {
			refs = append(refs, c.Name)
		}
		for _, c := range a.requiredIf {
			refs = append(refs, c.Name)
		}
		for _, ref := range refs {
			if !known(ref) {
				return specErr(a.name, errs.ErrUnknownReference.WithArgs(a.name, ref))
			}
		}
	}

	return nil
}

func (n *Node) addChild(child *Node) error {
	names := append([]string{child.name}, child.aliases...)
	names = append(names, child.visibleAliases...)
	for _, name := range names {
		if _, dup := n.childByName[name]; dup {
			return errs.ErrDuplicateSubcommand.WithArgs(name)
		}
	}
	for _, name := range names {
		n.childByName[name] = child
	}
	n.children = append(n.children, child)

	return nil
}

// longForms lists the visible long forms offered as suggestions
func (n *Node) longForms() []string {
	var forms []string
	for _, a := range n.args {
		if a.long != "" && !a.hidden {
			forms = append(forms, "--"+a.long)
		}
	}
	return forms
}

func (n *Node) subcommandNames() []string {
	names := make([]string, 0, len(n.children))
	for _, c := range n.children {
		names = append(names, c.name)
		names = append(names, c.visibleAliases...)
	}
	return names
}
