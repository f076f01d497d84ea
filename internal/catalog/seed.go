package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Seed is the startup content of a catalog, read from TOML:
//
//	[[books]]
//	id = "B1"
//	title = "Learning Python"
//	author = "Jane Doe"
//	reviews = ["I loved it"]
//
//	[[borrowers]]
//	id = "R1"
//	name = "Jon Smth"
//	borrowed = ["B1"]
type Seed struct {
	Books     []SeedBook     `toml:"books"`
	Borrowers []SeedBorrower `toml:"borrowers"`
}

// SeedBook describes one book and the reviews to replay for it.
type SeedBook struct {
	ID      string   `toml:"id"`
	Title   string   `toml:"title"`
	Author  string   `toml:"author"`
	Reviews []string `toml:"reviews"`
}

// SeedBorrower describes one borrower and the books lent to them.
type SeedBorrower struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Borrowed []string `toml:"borrowed"`
}

// LoadSeed reads a seed file from disk.
func LoadSeed(path string) (*Seed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer file.Close()
	return ParseSeed(file)
}

// ParseSeed decodes seed TOML. Unknown keys are rejected so typos in field
// names do not silently drop data.
func ParseSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &seed, nil
}

// Apply adds the seed's books and borrowers to c, then replays reviews and
// loans through the public operations so every rule is enforced. It stops
// at the first failure; callers should discard the catalog in that case.
func (s *Seed) Apply(c *Catalog) error {
	for i, book := range s.Books {
		if _, err := c.AddBook(book.ID, book.Title, book.Author); err != nil {
			return fmt.Errorf("seed books[%d]: %w", i, err)
		}
	}
	for i, borrower := range s.Borrowers {
		if _, err := c.AddBorrower(borrower.ID, borrower.Name); err != nil {
			return fmt.Errorf("seed borrowers[%d]: %w", i, err)
		}
	}
	for _, book := range s.Books {
		for j, text := range book.Reviews {
			if _, err := c.AddReview(book.ID, text); err != nil {
				return fmt.Errorf("seed book %q reviews[%d]: %w", book.ID, j, err)
			}
		}
	}
	for _, borrower := range s.Borrowers {
		for _, bookID := range borrower.Borrowed {
			if err := c.Borrow(bookID, borrower.ID); err != nil {
				return fmt.Errorf("seed borrower %q: %w", borrower.ID, err)
			}
		}
	}
	return c.Verify()
}
