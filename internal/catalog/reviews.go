package catalog

import (
	"errors"
	"fmt"
	"strings"

	"libris/internal/logging"
	"libris/internal/sentiment"
)

// AddReview classifies text and appends it to the book's reviews. The text is
// stored as given; only the scorer sees it trimmed. Earlier reviews are never
// edited or removed.
func (c *Catalog) AddReview(bookID, text string) (Review, error) {
	bookID = strings.TrimSpace(bookID)

	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[bookID]
	if !ok {
		return Review{}, wrap(ErrNotFound, "add review", fmt.Sprintf("no book %q", bookID))
	}
	label, score, err := sentiment.Classify(c.scorer, text)
	if err != nil {
		if errors.Is(err, ErrEmptyReview) {
			return Review{}, wrap(ErrEmptyReview, "add review", fmt.Sprintf("review for %q has no text", bookID))
		}
		return Review{}, fmt.Errorf("add review: %w", err)
	}

	review := Review{Text: text, Label: label, Score: score}
	book.reviews = append(book.reviews, review)

	c.logger.Debug("review added",
		logging.BookID(bookID),
		logging.String("label", label.String()),
		logging.Float64("score", score),
	)
	return review, nil
}
