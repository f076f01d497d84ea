package catalog

import "fmt"

// Verify checks the circulation invariants: every held id names an existing
// book, no book is held twice, and a book is unavailable exactly when one
// borrower holds it.
func (c *Catalog) Verify() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	holder := make(map[string]string, len(c.books))
	for _, borrowerID := range c.borrowerOrder {
		for _, bookID := range c.borrowers[borrowerID].held {
			if _, ok := c.books[bookID]; !ok {
				return fmt.Errorf("borrower %q holds unknown book %q", borrowerID, bookID)
			}
			if other, dup := holder[bookID]; dup {
				return fmt.Errorf("book %q held by both %q and %q", bookID, other, borrowerID)
			}
			holder[bookID] = borrowerID
		}
	}
	for _, bookID := range c.bookOrder {
		_, held := holder[bookID]
		if available := c.books[bookID].available; available == held {
			return fmt.Errorf("book %q available=%t but held=%t", bookID, available, held)
		}
	}
	return nil
}
