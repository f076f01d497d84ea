package catalog

import (
	"slices"

	"libris/internal/sentiment"
	"libris/internal/textutil"
)

// Status is the circulation state of a book.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
)

// Review is one recorded review with the label it was classified as.
type Review struct {
	Text  string          `json:"text"`
	Label sentiment.Label `json:"label"`
	Score float64         `json:"score"`
}

// Book is a point-in-time copy of a book record.
type Book struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Available bool     `json:"available"`
	Keywords  []string `json:"keywords"`
	Reviews   []Review `json:"reviews"`
}

// Status reports the circulation state of the book.
func (b Book) Status() Status {
	if b.Available {
		return StatusAvailable
	}
	return StatusBorrowed
}

// Borrower is a point-in-time copy of a borrower record.
type Borrower struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameTokens    []string `json:"name_tokens"`
	BorrowedBooks []string `json:"borrowed_books"`
}

// Holds reports whether the borrower currently has bookID.
func (b Borrower) Holds(bookID string) bool {
	return slices.Contains(b.BorrowedBooks, bookID)
}

// Loan names the two parties of a completed borrow or return.
type Loan struct {
	BookID       string `json:"book_id"`
	Title        string `json:"title"`
	BorrowerID   string `json:"borrower_id"`
	BorrowerName string `json:"borrower_name"`
}

// Stats summarizes the catalog.
type Stats struct {
	Books           int `json:"books"`
	Available       int `json:"available"`
	Borrowed        int `json:"borrowed"`
	Borrowers       int `json:"borrowers"`
	PositiveReviews int `json:"positive_reviews"`
	NegativeReviews int `json:"negative_reviews"`
	NeutralReviews  int `json:"neutral_reviews"`
}

type bookRecord struct {
	id        string
	title     string
	author    string
	available bool
	keywords  textutil.KeywordSet
	reviews   []Review
}

func (r *bookRecord) snapshot() Book {
	return Book{
		ID:        r.id,
		Title:     r.title,
		Author:    r.author,
		Available: r.available,
		Keywords:  r.keywords.Tokens(),
		Reviews:   append([]Review{}, r.reviews...),
	}
}

type borrowerRecord struct {
	id         string
	name       string
	nameTokens []string
	held       []string
}

func (r *borrowerRecord) snapshot() Borrower {
	return Borrower{
		ID:            r.id,
		Name:          r.name,
		NameTokens:    append([]string{}, r.nameTokens...),
		BorrowedBooks: append([]string{}, r.held...),
	}
}

func (r *borrowerRecord) holds(bookID string) bool {
	return slices.Contains(r.held, bookID)
}

func (r *borrowerRecord) release(bookID string) {
	if i := slices.Index(r.held, bookID); i >= 0 {
		r.held = slices.Delete(r.held, i, i+1)
	}
}
