// Package suggest finds close matches for mistyped argument and subcommand names.
package suggest

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// DefaultMaxDistance is the largest edit distance reported as a suggestion
const DefaultMaxDistance = 2

// Matcher ranks candidates by Levenshtein distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates up to maxDistance edits away
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2,
	}
}

// Match is a candidate within reach of the input
type Match struct {
	Value    string
	Distance int
}

// Best returns the closest candidate, or "" when none is within reach.
// Ties are broken by candidate order.
func (m *Matcher) Best(input string, candidates []string) string {
	matches := m.Matches(input, candidates)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Value
}

// Matches returns every candidate within reach, closest first
func (m *Matcher) Matches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)
	var matches []Match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == input || abs(len(lc)-len(input)) > m.maxDistance {
			continue
		}
		if d := smetrics.WagnerFischer(input, lc, 1, 1, 1); d <= m.maxDistance {
			matches = append(matches, Match{Value: c, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return matches
}

// Best is a shorthand for NewMatcher(DefaultMaxDistance).Best
func Best(input string, candidates []string) string {
	return NewMatcher(DefaultMaxDistance).Best(input, candidates)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
