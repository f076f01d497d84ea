package catalog

import (
	"fmt"
	"strings"

	"libris/internal/logging"
	"libris/internal/sentiment"
	"libris/internal/textutil"
)

// AddBook registers a new, available book. The id and title are required;
// the author may be empty.
func (c *Catalog) AddBook(id, title, author string) (Book, error) {
	id, title, author = strings.TrimSpace(id), strings.TrimSpace(title), strings.TrimSpace(author)
	if id == "" {
		return Book{}, wrap(ErrInvalidInput, "add book", "book id is required")
	}
	if title == "" {
		return Book{}, wrap(ErrInvalidInput, "add book", fmt.Sprintf("title is required for %q", id))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.books[id]; exists {
		return Book{}, wrap(ErrDuplicateID, "add book", fmt.Sprintf("book %q already exists", id))
	}
	record := &bookRecord{
		id:        id,
		title:     title,
		author:    author,
		available: true,
		keywords:  textutil.BuildKeywords(title, author),
	}
	c.books[id] = record
	c.bookOrder = append(c.bookOrder, id)

	c.logger.Debug("book added",
		logging.BookID(id),
		logging.Int("keywords", record.keywords.Len()),
	)
	return record.snapshot(), nil
}

// AddBorrower registers a new borrower holding no books.
func (c *Catalog) AddBorrower(id, name string) (Borrower, error) {
	id, name = strings.TrimSpace(id), strings.TrimSpace(name)
	if id == "" {
		return Borrower{}, wrap(ErrInvalidInput, "add borrower", "borrower id is required")
	}
	if name == "" {
		return Borrower{}, wrap(ErrInvalidInput, "add borrower", fmt.Sprintf("name is required for %q", id))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.borrowers[id]; exists {
		return Borrower{}, wrap(ErrDuplicateID, "add borrower", fmt.Sprintf("borrower %q already exists", id))
	}
	record := &borrowerRecord{
		id:         id,
		name:       name,
		nameTokens: textutil.BuildNameTokens(name),
	}
	c.borrowers[id] = record
	c.borrowerOrder = append(c.borrowerOrder, id)

	c.logger.Debug("borrower added", logging.BorrowerID(id))
	return record.snapshot(), nil
}

// Book returns the book with the exact id.
func (c *Catalog) Book(id string) (Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.books[strings.TrimSpace(id)]
	if !ok {
		return Book{}, wrap(ErrNotFound, "book", fmt.Sprintf("no book %q", id))
	}
	return record.snapshot(), nil
}

// Borrower returns the borrower with the exact id.
func (c *Catalog) Borrower(id string) (Borrower, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.borrowers[strings.TrimSpace(id)]
	if !ok {
		return Borrower{}, wrap(ErrNotFound, "borrower", fmt.Sprintf("no borrower %q", id))
	}
	return record.snapshot(), nil
}

// ListBooks returns every book in insertion order.
func (c *Catalog) ListBooks() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Book, 0, len(c.bookOrder))
	for _, id := range c.bookOrder {
		out = append(out, c.books[id].snapshot())
	}
	return out
}

// ListBorrowers returns every borrower in insertion order.
func (c *Catalog) ListBorrowers() []Borrower {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Borrower, 0, len(c.borrowerOrder))
	for _, id := range c.borrowerOrder {
		out = append(out, c.borrowers[id].snapshot())
	}
	return out
}

// Stats counts books by state, borrowers, and reviews by label.
func (c *Catalog) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{Books: len(c.books), Borrowers: len(c.borrowers)}
	for _, record := range c.books {
		if record.available {
			stats.Available++
		} else {
			stats.Borrowed++
		}
		for _, review := range record.reviews {
			switch review.Label {
			case sentiment.Positive:
				stats.PositiveReviews++
			case sentiment.Negative:
				stats.NegativeReviews++
			default:
				stats.NeutralReviews++
			}
		}
	}
	return stats
}
