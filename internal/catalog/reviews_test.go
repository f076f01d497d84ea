package catalog_test

import (
	"errors"
	"testing"

	"libris/internal/catalog"
	"libris/internal/sentiment"
)

func TestAddReviewAppendsInOrderAsTyped(t *testing.T) {
	c := newTestCatalog(t)
	mustAddBook(t, c, "B1", "Learning Python", "Jane Doe")

	for _, text := range []string{"great", "  bad  ", "meh"} {
		if _, err := c.AddReview("B1", text); err != nil {
			t.Fatalf("AddReview(%q) failed: %v", text, err)
		}
	}
	book, _ := c.Book("B1")
	want := []catalog.Review{
		{Text: "great", Label: sentiment.Positive, Score: 0.5},
		{Text: "  bad  ", Label: sentiment.Negative, Score: -0.5},
		{Text: "meh", Label: sentiment.Neutral, Score: 0},
	}
	if len(book.Reviews) != len(want) {
		t.Fatalf("reviews = %+v", book.Reviews)
	}
	for i := range want {
		if book.Reviews[i] != want[i] {
			t.Fatalf("review %d = %+v, want %+v", i, book.Reviews[i], want[i])
		}
	}
}

func TestAddReviewErrors(t *testing.T) {
	c := newTestCatalog(t)
	mustAddBook(t, c, "B1", "Learning Python", "Jane Doe")

	if _, err := c.AddReview("B404", "great"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.AddReview("B404", ""); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("unknown book must be reported before empty text, got %v", err)
	}
	_, err := c.AddReview("B1", " \t ")
	if !errors.Is(err, catalog.ErrEmptyReview) {
		t.Fatalf("expected ErrEmptyReview, got %v", err)
	}
	if catalog.Kind(err) != "empty_review" {
		t.Fatalf("Kind = %q", catalog.Kind(err))
	}

	book, _ := c.Book("B1")
	if len(book.Reviews) != 0 {
		t.Fatalf("failed reviews were stored: %+v", book.Reviews)
	}
}

func TestAddReviewWithDefaultScorer(t *testing.T) {
	c := catalog.New()
	mustAddBook(t, c, "B1", "Learning Python", "Jane Doe")

	tests := []struct {
		text string
		want sentiment.Label
	}{
		{"I loved this book, it was wonderful!", sentiment.Positive},
		{"Terrible and boring.", sentiment.Negative},
		{"Full of death and war", sentiment.Negative},
		{"Worth reading", sentiment.Positive},
		{"It has pages.", sentiment.Neutral},
	}
	for _, tt := range tests {
		review, err := c.AddReview("B1", tt.text)
		if err != nil {
			t.Fatalf("AddReview(%q) failed: %v", tt.text, err)
		}
		if review.Label != tt.want {
			t.Fatalf("AddReview(%q) label = %v (score %.3f), want %v", tt.text, review.Label, review.Score, tt.want)
		}
	}
}
