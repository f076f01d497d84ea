package catalog

import (
	"fmt"

	"libris/internal/fuzzy"
	"libris/internal/logging"
)

// Search returns the books whose keywords come within the matching threshold
// of any query token, in insertion order. It never fails; an empty catalog
// or a query of only stopwords yields an empty slice.
func (c *Catalog) Search(query string) []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := c.matcher.Search(query, c.bookCandidates())
	out := make([]Book, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.books[id].snapshot())
	}
	c.logger.Debug("search", logging.String("query", query), logging.Int("results", len(out)))
	return out
}

// ResolveBook maps a typed id, title word, or author word to a book id.
func (c *Catalog) ResolveBook(text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolveBookLocked(text)
}

// ResolveBorrower maps a typed id or name to a borrower id.
func (c *Catalog) ResolveBorrower(text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolveBorrowerLocked(text)
}

// suggestSlack is how far past the matching threshold a suggestion may be.
const suggestSlack = 2

// SuggestBook returns the book closest to text, allowing a little more
// distance than resolution does. It backs "did you mean" hints and never
// changes resolution.
func (c *Catalog) SuggestBook(text string) (Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, dist, ok := c.matcher.Closest(text, c.bookCandidates())
	if !ok || dist > c.matcher.MaxDistance+suggestSlack {
		return Book{}, false
	}
	return c.books[id].snapshot(), true
}

// SuggestBorrower is SuggestBook for borrowers.
func (c *Catalog) SuggestBorrower(text string) (Borrower, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, dist, ok := c.matcher.Closest(text, c.borrowerCandidates())
	if !ok || dist > c.matcher.MaxDistance+suggestSlack {
		return Borrower{}, false
	}
	return c.borrowers[id].snapshot(), true
}

func (c *Catalog) resolveBookLocked(text string) (string, error) {
	id, ok := c.matcher.Resolve(text, c.bookCandidates())
	if !ok {
		return "", wrap(ErrNotFound, "resolve book", fmt.Sprintf("no book matches %q", text))
	}
	return id, nil
}

func (c *Catalog) resolveBorrowerLocked(text string) (string, error) {
	id, ok := c.matcher.Resolve(text, c.borrowerCandidates())
	if !ok {
		return "", wrap(ErrNotFound, "resolve borrower", fmt.Sprintf("no borrower matches %q", text))
	}
	return id, nil
}

func (c *Catalog) bookCandidates() []fuzzy.Candidate {
	out := make([]fuzzy.Candidate, 0, len(c.bookOrder))
	for _, id := range c.bookOrder {
		out = append(out, fuzzy.Candidate{ID: id, Terms: c.books[id].keywords.Tokens()})
	}
	return out
}

func (c *Catalog) borrowerCandidates() []fuzzy.Candidate {
	out := make([]fuzzy.Candidate, 0, len(c.borrowerOrder))
	for _, id := range c.borrowerOrder {
		out = append(out, fuzzy.Candidate{ID: id, Terms: c.borrowers[id].nameTokens})
	}
	return out
}
