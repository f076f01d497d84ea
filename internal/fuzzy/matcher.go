package fuzzy

import (
	"strings"

	"libris/internal/textutil"
)

// DefaultMaxDistance is the edit distance tolerated between a query token and
// a keyword.
const DefaultMaxDistance = 2

// Candidate is one record offered to the matcher: its canonical id and the
// normalized terms (keywords or name tokens) it is known by.
type Candidate struct {
	ID    string
	Terms []string
}

// Matcher applies a fixed distance threshold.
type Matcher struct {
	MaxDistance int
}

// NewMatcher returns a Matcher with the given threshold. Negative values fall
// back to DefaultMaxDistance.
func NewMatcher(maxDistance int) Matcher {
	if maxDistance < 0 {
		maxDistance = DefaultMaxDistance
	}
	return Matcher{MaxDistance: maxDistance}
}

// Matches reports whether any query token is within the threshold of any
// term. A candidate with no terms never matches.
func (m Matcher) Matches(queryTokens, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	for _, token := range queryTokens {
		if d, ok := MinDistance(token, terms); ok && d <= m.MaxDistance {
			return true
		}
	}
	return false
}

// Search returns the ids of every candidate matched by the normalized query,
// in candidate order.
func (m Matcher) Search(query string, candidates []Candidate) []string {
	tokens := textutil.Normalize(query)
	ids := make([]string, 0)
	if len(tokens) == 0 {
		return ids
	}
	for _, c := range candidates {
		if m.Matches(tokens, c.Terms) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Resolve maps free-form input to a candidate id. An id equal to the input
// (ignoring case) wins outright; otherwise the first candidate in order whose
// terms come within the threshold of the input is returned.
func (m Matcher) Resolve(input string, candidates []Candidate) (string, bool) {
	probe := newProbe(input)
	if probe.whole == "" {
		return "", false
	}
	for _, c := range candidates {
		if textutil.Fold(c.ID) == probe.whole {
			return c.ID, true
		}
	}
	for _, c := range candidates {
		if d, ok := probe.distance(c.Terms); ok && d <= m.MaxDistance {
			return c.ID, true
		}
	}
	return "", false
}

// Closest returns the candidate with the smallest distance to the input,
// regardless of threshold, with ties going to the earliest candidate.
func (m Matcher) Closest(input string, candidates []Candidate) (string, int, bool) {
	probe := newProbe(input)
	if probe.whole == "" {
		return "", 0, false
	}
	bestID, best := "", -1
	for _, c := range candidates {
		d, ok := probe.distance(c.Terms)
		if !ok {
			continue
		}
		if best < 0 || d < best {
			bestID, best = c.ID, d
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return bestID, best, true
}

// probe is resolver input prepared once: the trimmed lowercased whole string
// plus its normalized tokens.
type probe struct {
	whole  string
	tokens []string
}

func newProbe(input string) probe {
	whole := textutil.Fold(strings.TrimSpace(input))
	return probe{whole: whole, tokens: textutil.Normalize(whole)}
}

// distance is the smallest distance between any term and either the whole
// input or one of its tokens.
func (p probe) distance(terms []string) (int, bool) {
	best, ok := MinDistance(p.whole, terms)
	if !ok {
		return 0, false
	}
	for _, token := range p.tokens {
		if best == 0 {
			break
		}
		if d, _ := MinDistance(token, terms); d < best {
			best = d
		}
	}
	return best, true
}
