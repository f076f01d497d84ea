package catalog

import (
	"errors"
	"fmt"
	"strings"

	"libris/internal/sentiment"
)

var (
	// ErrInvalidInput marks a required field that is blank.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateID marks an add whose id is already taken.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrNotFound marks a book or borrower that no id or fuzzy match reaches.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyBorrowed marks a borrow of a book that is out.
	ErrAlreadyBorrowed = errors.New("already borrowed")
	// ErrNotBorrowedByThisBorrower marks a return by someone not holding the book.
	ErrNotBorrowedByThisBorrower = errors.New("not borrowed by this borrower")
	// ErrEmptyReview marks review text that is blank after trimming.
	ErrEmptyReview = sentiment.ErrEmptyReview
)

// wrap tags an operation failure with one of the sentinels above so callers
// can classify it with errors.Is while the message keeps the context.
func wrap(marker error, operation, detail string) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		parts = append(parts, detail)
	}
	if len(parts) == 0 {
		return marker
	}
	return fmt.Errorf("%w: %s", marker, strings.Join(parts, ": "))
}

// Kind returns a short machine-readable classification of err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyBorrowed):
		return "already_borrowed"
	case errors.Is(err, ErrNotBorrowedByThisBorrower):
		return "not_borrowed_by_borrower"
	case errors.Is(err, ErrEmptyReview):
		return "empty_review"
	default:
		return "internal"
	}
}
