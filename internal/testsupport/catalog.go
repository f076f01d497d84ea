package testsupport

import (
	"strings"
	"testing"

	"libris/internal/catalog"
	"libris/internal/sentiment"
)

// SampleSeed is a small catalog used across command and shell tests.
const SampleSeed = `
[[books]]
id = "B1"
title = "Learning Python"
author = "Jane Doe"

[[books]]
id = "B2"
title = "Dune"
author = "Frank Herbert"

[[books]]
id = "B3"
title = "Python Tricks"
author = "Dan Bader"

[[borrowers]]
id = "R1"
name = "Jon Smth"

[[borrowers]]
id = "R2"
name = "Ada Lovelace"
borrowed = ["B2"]
`

// StubScorer scores a review by keyword: "good" is positive, "bad" is
// negative, anything else neutral.
var StubScorer = sentiment.ScorerFunc(func(text string) float64 {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "good"):
		return 0.6
	case strings.Contains(lower, "bad"):
		return -0.6
	default:
		return 0
	}
})

// NewCatalog returns a catalog loaded with SampleSeed and scored by
// StubScorer.
func NewCatalog(t testing.TB, opts ...catalog.Option) *catalog.Catalog {
	t.Helper()

	seed, err := catalog.ParseSeed(strings.NewReader(SampleSeed))
	if err != nil {
		t.Fatalf("parse sample seed: %v", err)
	}
	c := catalog.New(append([]catalog.Option{catalog.WithScorer(StubScorer)}, opts...)...)
	if err := seed.Apply(c); err != nil {
		t.Fatalf("apply sample seed: %v", err)
	}
	return c
}
