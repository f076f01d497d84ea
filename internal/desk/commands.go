package desk

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"libris/internal/catalog"
)

// commandNames feeds terminal completion.
var commandNames = []string{
	"add-book", "add-borrower", "search", "borrow", "return", "review",
	"books", "borrowers", "show", "stats", "help", "exit",
}

func newCommandTree(d *Desk) *cobra.Command {
	root := &cobra.Command{
		Use:           "desk",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(d.out)
	root.SetErr(d.out)

	command := func(use, short string, run func(out io.Writer, args []string) error) *cobra.Command {
		return &cobra.Command{
			Use:                use,
			Short:              short,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.OutOrStdout(), args)
			},
		}
	}

	root.AddCommand(
		command("add-book [id] [title] [author]", "Add a book", d.addBook),
		command("add-borrower [id] [name...]", "Register a borrower", d.addBorrower),
		command("search [query...]", "Find books by title or author words, typos allowed", d.search),
		command("borrow [borrower] [book]", "Lend a book; both sides may be ids, names, or title words", d.borrow),
		command("return [borrower] [book]", "Take a book back", d.giveBack),
		command("review [book-id] [text...]", "Record a review and show its sentiment", d.review),
		command("books", "List every book", d.books),
		command("borrowers", "List every borrower", d.borrowers),
		command("show [book]", "Show one book with its reviews", d.show),
		command("stats", "Summarize the catalog", d.stats),
	)

	exit := command("exit", "Leave the desk", func(io.Writer, []string) error {
		d.done = true
		return nil
	})
	exit.Aliases = []string{"quit"}
	root.AddCommand(exit)

	root.SetHelpCommand(command("help", "List commands", func(out io.Writer, _ []string) error {
		for _, cmd := range root.Commands() {
			if cmd.Hidden {
				continue
			}
			fmt.Fprintf(out, "  %-32s %s\n", cmd.Use, cmd.Short)
		}
		return nil
	}))
	return root
}

func (d *Desk) addBook(out io.Writer, args []string) error {
	id, err := d.argOrAsk(args, 0, "Book ID", true)
	if err != nil {
		return err
	}
	title, err := d.argOrAsk(args, 1, "Title", true)
	if err != nil {
		return err
	}
	author, err := d.argOrAsk(args, 2, "Author (optional)", false)
	if err != nil {
		return err
	}
	book, err := d.catalog.AddBook(id, title, author)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Book '%s' added as %s.\n", book.Title, book.ID)
	return nil
}

func (d *Desk) addBorrower(out io.Writer, args []string) error {
	id, err := d.argOrAsk(args, 0, "Borrower ID", true)
	if err != nil {
		return err
	}
	name, err := d.restOrAsk(args, 1, "Name")
	if err != nil {
		return err
	}
	borrower, err := d.catalog.AddBorrower(id, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Borrower '%s' added as %s.\n", borrower.Name, borrower.ID)
	return nil
}

func (d *Desk) search(out io.Writer, args []string) error {
	query, err := d.restOrAsk(args, 0, "Title or author")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, SearchResults(d.catalog.Search(query)))
	return nil
}

func (d *Desk) borrow(out io.Writer, args []string) error {
	borrowerText, bookText, err := d.circulationArgs(args, "borrow")
	if err != nil {
		return err
	}
	loan, err := d.catalog.LendByQuery(borrowerText, bookText)
	if err != nil {
		d.hint(out, err, borrowerText, bookText)
		return err
	}
	fmt.Fprintf(out, "Book '%s' borrowed by '%s'.\n", loan.Title, loan.BorrowerName)
	return nil
}

func (d *Desk) giveBack(out io.Writer, args []string) error {
	borrowerText, bookText, err := d.circulationArgs(args, "return")
	if err != nil {
		return err
	}
	loan, err := d.catalog.ReturnByQuery(borrowerText, bookText)
	if err != nil {
		d.hint(out, err, borrowerText, bookText)
		return err
	}
	fmt.Fprintf(out, "Book '%s' returned by '%s'.\n", loan.Title, loan.BorrowerName)
	return nil
}

func (d *Desk) circulationArgs(args []string, verb string) (string, string, error) {
	borrowerText, err := d.argOrAsk(args, 0, "Borrower name or ID", true)
	if err != nil {
		return "", "", err
	}
	bookText, err := d.restOrAsk(args, 1, "Book title or ID to "+verb)
	if err != nil {
		return "", "", err
	}
	return borrowerText, bookText, nil
}

// hint prints a "did you mean" line when a resolution failed. It works out
// which side failed by resolving the borrower again.
func (d *Desk) hint(out io.Writer, err error, borrowerText, bookText string) {
	if !errors.Is(err, catalog.ErrNotFound) {
		return
	}
	if _, resolveErr := d.catalog.ResolveBorrower(borrowerText); resolveErr != nil {
		if borrower, ok := d.catalog.SuggestBorrower(borrowerText); ok {
			fmt.Fprintf(out, "Did you mean borrower %s (%s)?\n", borrower.ID, borrower.Name)
		}
		return
	}
	if book, ok := d.catalog.SuggestBook(bookText); ok {
		fmt.Fprintf(out, "Did you mean book %s (%s)?\n", book.ID, book.Title)
	}
}

func (d *Desk) review(out io.Writer, args []string) error {
	bookID, err := d.argOrAsk(args, 0, "Book ID to review", true)
	if err != nil {
		return err
	}
	if _, err := d.catalog.Book(bookID); err != nil {
		if book, ok := d.catalog.SuggestBook(bookID); ok {
			fmt.Fprintf(out, "Did you mean book %s (%s)?\n", book.ID, book.Title)
		}
		return err
	}
	text, err := d.restOrAsk(args, 1, "Your review")
	if err != nil {
		return err
	}
	review, err := d.catalog.AddReview(bookID, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Your review was added. Sentiment: %s (%s)\n", review.Label, strconv.FormatFloat(review.Score, 'f', 3, 64))
	return nil
}

func (d *Desk) books(out io.Writer, _ []string) error {
	fmt.Fprintln(out, BooksTable(d.format, d.catalog.ListBooks()))
	return nil
}

func (d *Desk) borrowers(out io.Writer, _ []string) error {
	fmt.Fprintln(out, BorrowersTable(d.format, d.catalog.ListBorrowers()))
	return nil
}

func (d *Desk) show(out io.Writer, args []string) error {
	text, err := d.restOrAsk(args, 0, "Book title or ID")
	if err != nil {
		return err
	}
	id, err := d.catalog.ResolveBook(text)
	if err != nil {
		if book, ok := d.catalog.SuggestBook(text); ok {
			fmt.Fprintf(out, "Did you mean book %s (%s)?\n", book.ID, book.Title)
		}
		return err
	}
	book, err := d.catalog.Book(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, BookDetail(d.format, book))
	return nil
}

func (d *Desk) stats(out io.Writer, _ []string) error {
	fmt.Fprintln(out, StatsLine(d.catalog.Stats()))
	return nil
}
