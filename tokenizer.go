package argmatch

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/argmatch/internal/parse"
	"github.com/napalu/argmatch/internal/util"
)

type tokenKind int

const (
	tokenValue tokenKind = iota
	tokenTerminator
	tokenLong
	tokenShortCluster
	tokenSubcommand
)

func (k tokenKind) String() string {
	switch k {
	case tokenTerminator:
		return "terminator"
	case tokenLong:
		return "long"
	case tokenShortCluster:
		return "cluster"
	case tokenSubcommand:
		return "subcommand"
	}
	return "value"
}

// token is a raw argument classified against the node being matched
type token struct {
	kind     tokenKind
	raw      parse.Token
	name     string
	value    string
	hasValue bool
	spec     *argSpec
	child    *Node
}

// classify never mutates st. An unknown long form is returned with a nil spec.
func classify(st *matchState, t parse.Token) token {
	v := t.Value
	tok := token{kind: tokenValue, raw: t, value: v}

	switch {
	case st.terminated:
	case v == "--":
		tok.kind = tokenTerminator
	case strings.HasPrefix(v, "--"):
		tok.kind = tokenLong
		tok.name, tok.value, tok.hasValue = strings.Cut(v[2:], "=")
		tok.spec = st.node.byLong[tok.name]
	case looksLikeFlag(st.node, v):
		tok.kind = tokenShortCluster
		tok.name = v[1:]
		tok.value = ""
	default:
		if child, ok := st.node.childByName[v]; ok && st.acceptsSubcommand() {
			tok.kind = tokenSubcommand
			tok.name = child.name
			tok.child = child
		}
	}

	return tok
}

// looksLikeFlag reports whether v starts a flag rather than being a value. A lone "-"
// is a value, as is a negative number when the node allows them.
func looksLikeFlag(n *Node, v string) bool {
	if len(v) < 2 || v[0] != '-' {
		return false
	}
	if n.settings.Has(AllowNegativeNumbers) && util.IsNegativeNumber(v) {
		return false
	}
	return true
}

type clusterItemKind int

const (
	itemFlag clusterItemKind = iota
	itemOption
	itemUnknown
	itemUnexpectedValue
	itemAmbiguous
)

type clusterItem struct {
	kind     clusterItemKind
	short    rune
	spec     *argSpec
	value    string
	hasValue bool
}

// cluster resolves the short flags of "-abc" left to right. The first flag taking a
// value claims the rest of the cluster as its value, a single leading '=' removed.
type cluster struct {
	node *Node
	body string
	off  int
}

func newCluster(n *Node, body string) *cluster {
	return &cluster{node: n, body: body}
}

func (c *cluster) next() (clusterItem, bool) {
	if c.off >= len(c.body) {
		return clusterItem{}, false
	}

	r, size := utf8.DecodeRuneInString(c.body[c.off:])
	c.off += size
	spec := c.node.byShort[r]
	if spec == nil {
		c.off = len(c.body)
		return clusterItem{kind: itemUnknown, short: r}, true
	}

	rest := c.body[c.off:]
	if !spec.takesValue() {
		if strings.HasPrefix(rest, "=") {
			c.off = len(c.body)
			return clusterItem{kind: itemUnexpectedValue, short: r, spec: spec, value: rest[1:]}, true
		}
		return clusterItem{kind: itemFlag, short: r, spec: spec}, true
	}

	c.off = len(c.body)
	if rest == "" {
		return clusterItem{kind: itemOption, short: r, spec: spec}, true
	}
	if strings.HasPrefix(rest, "=") {
		rest = rest[1:]
		if rest == "" {
			return clusterItem{kind: itemAmbiguous, short: r, spec: spec}, true
		}
	}

	return clusterItem{kind: itemOption, short: r, spec: spec, value: rest, hasValue: true}, true
}

// splitValue applies the delimiter of s to one value token
func splitValue(s *argSpec, v string) []string {
	if s.delimiter == 0 {
		return []string{v}
	}
	return strings.Split(v, string(s.delimiter))
}
