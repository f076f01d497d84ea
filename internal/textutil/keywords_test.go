package textutil

import (
	"reflect"
	"testing"
)

func TestBuildKeywordsUnionsTitleAndAuthor(t *testing.T) {
	set := BuildKeywords("Learning Python", "Jane Doe")
	for _, want := range []string{"learning", "python", "jane", "doe"} {
		if !set.Contains(want) {
			t.Fatalf("expected keyword %q in %v", want, set.Tokens())
		}
	}
	if set.Len() != 4 {
		t.Fatalf("unexpected keyword count: got %d want 4", set.Len())
	}
}

func TestBuildKeywordsDeduplicates(t *testing.T) {
	set := BuildKeywords("Python Python", "python")
	if got := set.Tokens(); !reflect.DeepEqual(got, []string{"python"}) {
		t.Fatalf("Tokens() = %v, want [python]", got)
	}
}

func TestBuildKeywordsEmptyWhenOnlyStopwords(t *testing.T) {
	set := BuildKeywords("The", "")
	if set.Len() != 0 {
		t.Fatalf("expected empty keyword set, got %v", set.Tokens())
	}
}

func TestKeywordSetTokensReturnsCopy(t *testing.T) {
	set := NewKeywordSet("alpha", "beta")
	tokens := set.Tokens()
	tokens[0] = "mutated"
	if !set.Contains("alpha") || set.Tokens()[0] != "alpha" {
		t.Fatal("mutating Tokens() result changed the set")
	}
}

func TestBuildNameTokensKeepsDuplicates(t *testing.T) {
	got := BuildNameTokens("Anna Anna Karenina")
	want := []string{"anna", "anna", "karenina"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildNameTokens() = %v, want %v", got, want)
	}
}
