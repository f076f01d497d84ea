package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"libris/internal/catalog"
)

const sampleSeed = `
[[books]]
id = "B1"
title = "Learning Python"
author = "Jane Doe"
reviews = ["great", "bad"]

[[books]]
id = "B2"
title = "Dune"
author = "Frank Herbert"

[[borrowers]]
id = "R1"
name = "Jon Smth"
borrowed = ["B2"]
`

func TestSeedApply(t *testing.T) {
	seed, err := catalog.ParseSeed(strings.NewReader(sampleSeed))
	if err != nil {
		t.Fatalf("ParseSeed failed: %v", err)
	}
	c := newTestCatalog(t)
	if err := seed.Apply(c); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	stats := c.Stats()
	want := catalog.Stats{Books: 2, Available: 1, Borrowed: 1, Borrowers: 1, PositiveReviews: 1, NegativeReviews: 1}
	if stats != want {
		t.Fatalf("Stats() = %+v, want %+v", stats, want)
	}
	borrower, _ := c.Borrower("R1")
	if !borrower.Holds("B2") {
		t.Fatalf("expected R1 to hold B2, got %v", borrower.BorrowedBooks)
	}
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	_, err := catalog.ParseSeed(strings.NewReader("[[books]]\nid = \"B1\"\ntitel = \"Typo\"\n"))
	if err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestSeedApplyStopsOnConflict(t *testing.T) {
	tests := []struct {
		name string
		seed string
		want error
	}{
		{
			name: "duplicate book",
			seed: "[[books]]\nid = \"B1\"\ntitle = \"A\"\n[[books]]\nid = \"B1\"\ntitle = \"B\"\n",
			want: catalog.ErrDuplicateID,
		},
		{
			name: "book lent twice",
			seed: "[[books]]\nid = \"B1\"\ntitle = \"A\"\n" +
				"[[borrowers]]\nid = \"R1\"\nname = \"One\"\nborrowed = [\"B1\"]\n" +
				"[[borrowers]]\nid = \"R2\"\nname = \"Two\"\nborrowed = [\"B1\"]\n",
			want: catalog.ErrAlreadyBorrowed,
		},
		{
			name: "unknown loaned book",
			seed: "[[borrowers]]\nid = \"R1\"\nname = \"One\"\nborrowed = [\"B9\"]\n",
			want: catalog.ErrNotFound,
		},
		{
			name: "empty review",
			seed: "[[books]]\nid = \"B1\"\ntitle = \"A\"\nreviews = [\"  \"]\n",
			want: catalog.ErrEmptyReview,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := catalog.ParseSeed(strings.NewReader(tt.seed))
			if err != nil {
				t.Fatalf("ParseSeed failed: %v", err)
			}
			if err := seed.Apply(newTestCatalog(t)); !errors.Is(err, tt.want) {
				t.Fatalf("Apply error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	if err := os.WriteFile(path, []byte(sampleSeed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	seed, err := catalog.LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(seed.Books) != 2 || len(seed.Borrowers) != 1 {
		t.Fatalf("unexpected seed: %+v", seed)
	}
	if _, err := catalog.LoadSeed(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}
