package fuzzy

import (
	"reflect"
	"testing"
)

func sampleCandidates() []Candidate {
	return []Candidate{
		{ID: "B1", Terms: []string{"learning", "python", "jane", "doe"}},
		{ID: "B2", Terms: []string{}},
		{ID: "B3", Terms: []string{"go", "programming", "language", "donovan"}},
		{ID: "B4", Terms: []string{"python", "cookbook", "beazley"}},
	}
}

func TestSearchMatchesTypos(t *testing.T) {
	m := NewMatcher(DefaultMaxDistance)
	got := m.Search("pithon", sampleCandidates())
	want := []string{"B1", "B4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(pithon) = %v, want %v", got, want)
	}
}

func TestSearchEdgeCases(t *testing.T) {
	m := NewMatcher(DefaultMaxDistance)
	tests := []struct {
		name       string
		query      string
		candidates []Candidate
		want       []string
	}{
		{"no candidates", "python", nil, []string{}},
		{"empty query", "", sampleCandidates(), []string{}},
		{"stopword query", "the of and", sampleCandidates(), []string{}},
		{"too far", "javascript", sampleCandidates(), []string{}},
		{"any token matches", "rust programing", sampleCandidates(), []string{"B3"}},
		{"case insensitive query", "DONOVAN", sampleCandidates(), []string{"B3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Search(tt.query, tt.candidates)
			if got == nil {
				t.Fatal("Search returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchesEmptyTermsNeverMatch(t *testing.T) {
	m := NewMatcher(5)
	if m.Matches([]string{"a"}, nil) {
		t.Fatal("expected no match against empty terms")
	}
}

func TestResolvePrefersExactIDOverEarlierFuzzyMatch(t *testing.T) {
	m := NewMatcher(DefaultMaxDistance)
	candidates := []Candidate{
		{ID: "X1", Terms: []string{"b4"}},
		{ID: "B4", Terms: []string{"cookbook"}},
	}
	id, ok := m.Resolve("b4", candidates)
	if !ok || id != "B4" {
		t.Fatalf("Resolve(b4) = (%q, %v), want (B4, true)", id, ok)
	}
}

func TestResolve(t *testing.T) {
	m := NewMatcher(DefaultMaxDistance)
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"exact id mixed case", "  b3 ", "B3", true},
		{"single keyword typo", "pyton", "B1", true},
		{"first match wins", "python", "B1", true},
		{"whole input within threshold", "beazly", "B4", true},
		{"multi word through token", "Alan Donovan", "B3", true},
		{"blank", "   ", "", false},
		{"nothing close", "dostoevsky", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := m.Resolve(tt.input, sampleCandidates())
			if ok != tt.wantOK || id != tt.wantID {
				t.Fatalf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.input, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestResolveSkipsEmptyTerms(t *testing.T) {
	m := NewMatcher(10)
	id, ok := m.Resolve("anything", []Candidate{{ID: "E1"}})
	if ok {
		t.Fatalf("expected no resolution, got %q", id)
	}
}

func TestResolveBorrowerNameWithTypos(t *testing.T) {
	m := NewMatcher(DefaultMaxDistance)
	candidates := []Candidate{{ID: "R1", Terms: []string{"jon", "smth"}}}
	id, ok := m.Resolve("John Smith", candidates)
	if !ok || id != "R1" {
		t.Fatalf("Resolve(John Smith) = (%q, %v), want (R1, true)", id, ok)
	}
}

func TestClosest(t *testing.T) {
	m := NewMatcher(DefaultMaxDistance)
	id, d, ok := m.Closest("cookbok", sampleCandidates())
	if !ok || id != "B4" || d != 1 {
		t.Fatalf("Closest(cookbok) = (%q, %d, %v), want (B4, 1, true)", id, d, ok)
	}
	if _, _, ok := m.Closest("", sampleCandidates()); ok {
		t.Fatal("expected no result for blank input")
	}
	if _, _, ok := m.Closest("x", []Candidate{{ID: "E"}}); ok {
		t.Fatal("expected no result when every candidate has empty terms")
	}
}

func TestNewMatcherNegativeFallsBack(t *testing.T) {
	if m := NewMatcher(-1); m.MaxDistance != DefaultMaxDistance {
		t.Fatalf("MaxDistance = %d, want %d", m.MaxDistance, DefaultMaxDistance)
	}
}
