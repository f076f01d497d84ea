package desk_test

import (
	"strings"
	"testing"

	"libris/internal/catalog"
	"libris/internal/desk"
	"libris/internal/sentiment"
)

func TestBooksTable(t *testing.T) {
	books := []catalog.Book{
		{ID: "B1", Title: "Learning Python", Author: "Jane Doe", Available: true},
		{ID: "B2", Title: "Dune", Author: "Frank Herbert", Available: false, Reviews: []catalog.Review{{Text: "ok"}}},
	}
	plain := desk.BooksTable(desk.Plain, books)
	for _, want := range []string{"ID", "TITLE", "Learning Python", "Yes", "No"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in table:\n%s", want, plain)
		}
	}
	if styled := desk.BooksTable(desk.Styled, books); !strings.Contains(styled, "╭") {
		t.Fatalf("expected rounded borders:\n%s", styled)
	}
	if got := desk.BooksTable(desk.Plain, nil); got != "No books." {
		t.Fatalf("empty table = %q", got)
	}
}

func TestSearchLine(t *testing.T) {
	tests := []struct {
		book catalog.Book
		want string
	}{
		{catalog.Book{ID: "B1", Title: "Learning Python", Author: "Jane Doe", Available: true}, "B1: Learning Python by Jane Doe (Available)"},
		{catalog.Book{ID: "B9", Title: "Poems"}, "B9: Poems (Borrowed)"},
	}
	for _, tt := range tests {
		if got := desk.SearchLine(tt.book); got != tt.want {
			t.Fatalf("SearchLine = %q, want %q", got, tt.want)
		}
	}
	if got := desk.SearchResults(nil); got != "No matching books found." {
		t.Fatalf("SearchResults(nil) = %q", got)
	}
}

func TestBookDetail(t *testing.T) {
	book := catalog.Book{
		ID: "B1", Title: "Learning Python", Author: "Jane Doe", Available: true,
		Keywords: []string{"learning", "python", "jane", "doe"},
		Reviews:  []catalog.Review{{Text: "loved it", Label: sentiment.Positive, Score: 0.5994}},
	}
	detail := desk.BookDetail(desk.Plain, book)
	for _, want := range []string{"Keywords: learning, python, jane, doe", "Positive", "0.599", "loved it"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("expected %q in detail:\n%s", want, detail)
		}
	}
}
