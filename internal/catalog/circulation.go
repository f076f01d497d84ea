package catalog

import (
	"fmt"
	"strings"

	"libris/internal/logging"
)

// Borrow lends an available book to a borrower.
//
//	ERROR: ErrNotFound if the borrower or the book does not exist
//	ERROR: ErrAlreadyBorrowed if the book is currently lent to anyone
func (c *Catalog) Borrow(bookID, borrowerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.borrowLocked(strings.TrimSpace(bookID), strings.TrimSpace(borrowerID))
	return err
}

// Return takes a book back from the borrower holding it.
//
//	ERROR: ErrNotFound if the borrower or the book does not exist
//	ERROR: ErrNotBorrowedByThisBorrower if the borrower does not hold the book
func (c *Catalog) Return(bookID, borrowerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.returnLocked(strings.TrimSpace(bookID), strings.TrimSpace(borrowerID))
	return err
}

// LendByQuery resolves free-form borrower and book input, borrower first,
// and lends the book.
func (c *Catalog) LendByQuery(borrowerText, bookText string) (Loan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	borrowerID, err := c.resolveBorrowerLocked(borrowerText)
	if err != nil {
		return Loan{}, err
	}
	bookID, err := c.resolveBookLocked(bookText)
	if err != nil {
		return Loan{}, err
	}
	return c.borrowLocked(bookID, borrowerID)
}

// ReturnByQuery resolves free-form borrower and book input, borrower first,
// and returns the book.
func (c *Catalog) ReturnByQuery(borrowerText, bookText string) (Loan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	borrowerID, err := c.resolveBorrowerLocked(borrowerText)
	if err != nil {
		return Loan{}, err
	}
	bookID, err := c.resolveBookLocked(bookText)
	if err != nil {
		return Loan{}, err
	}
	return c.returnLocked(bookID, borrowerID)
}

func (c *Catalog) borrowLocked(bookID, borrowerID string) (Loan, error) {
	borrower, ok := c.borrowers[borrowerID]
	if !ok {
		return Loan{}, c.rejected("borrow", bookID, borrowerID, wrap(ErrNotFound, "borrow", fmt.Sprintf("no borrower %q", borrowerID)))
	}
	book, ok := c.books[bookID]
	if !ok {
		return Loan{}, c.rejected("borrow", bookID, borrowerID, wrap(ErrNotFound, "borrow", fmt.Sprintf("no book %q", bookID)))
	}
	if !book.available {
		return Loan{}, c.rejected("borrow", bookID, borrowerID, wrap(ErrAlreadyBorrowed, "borrow", fmt.Sprintf("book %q is already borrowed", bookID)))
	}

	book.available = false
	borrower.held = append(borrower.held, bookID)

	c.logger.Debug("book borrowed",
		logging.BookID(bookID),
		logging.BorrowerID(borrowerID),
	)
	return Loan{BookID: bookID, Title: book.title, BorrowerID: borrowerID, BorrowerName: borrower.name}, nil
}

func (c *Catalog) returnLocked(bookID, borrowerID string) (Loan, error) {
	borrower, ok := c.borrowers[borrowerID]
	if !ok {
		return Loan{}, c.rejected("return", bookID, borrowerID, wrap(ErrNotFound, "return", fmt.Sprintf("no borrower %q", borrowerID)))
	}
	book, ok := c.books[bookID]
	if !ok {
		return Loan{}, c.rejected("return", bookID, borrowerID, wrap(ErrNotFound, "return", fmt.Sprintf("no book %q", bookID)))
	}
	if book.available || !borrower.holds(bookID) {
		return Loan{}, c.rejected("return", bookID, borrowerID, wrap(ErrNotBorrowedByThisBorrower, "return", fmt.Sprintf("borrower %q does not hold book %q", borrowerID, bookID)))
	}

	borrower.release(bookID)
	book.available = true

	c.logger.Debug("book returned",
		logging.BookID(bookID),
		logging.BorrowerID(borrowerID),
	)
	return Loan{BookID: bookID, Title: book.title, BorrowerID: borrowerID, BorrowerName: borrower.name}, nil
}

func (c *Catalog) rejected(operation, bookID, borrowerID string, err error) error {
	c.logger.Info(operation+" rejected",
		logging.BookID(bookID),
		logging.BorrowerID(borrowerID),
		logging.Reason(Kind(err)),
	)
	return err
}
