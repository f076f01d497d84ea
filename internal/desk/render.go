package desk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"libris/internal/catalog"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// Format selects how tables are drawn.
type Format int

const (
	// Plain draws ASCII borders, for pipes and logs.
	Plain Format = iota
	// Styled draws rounded box borders, for terminals.
	Styled
)

func renderTable(format Format, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if format == Styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// BooksTable lists books with their circulation state.
func BooksTable(format Format, books []catalog.Book) string {
	if len(books) == 0 {
		return "No books."
	}
	rows := make([][]string, 0, len(books))
	for _, book := range books {
		rows = append(rows, []string{
			book.ID,
			book.Title,
			book.Author,
			yesNo(book.Available),
			strconv.Itoa(len(book.Reviews)),
		})
	}
	return renderTable(format,
		[]string{"ID", "Title", "Author", "Available", "Reviews"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

// BorrowersTable lists borrowers with the books they hold.
func BorrowersTable(format Format, borrowers []catalog.Borrower) string {
	if len(borrowers) == 0 {
		return "No borrowers."
	}
	rows := make([][]string, 0, len(borrowers))
	for _, borrower := range borrowers {
		rows = append(rows, []string{
			borrower.ID,
			borrower.Name,
			strings.Join(borrower.BorrowedBooks, ", "),
		})
	}
	return renderTable(format, []string{"ID", "Name", "Borrowed"}, rows, nil)
}

// SearchResults formats search hits one per line.
func SearchResults(books []catalog.Book) string {
	if len(books) == 0 {
		return "No matching books found."
	}
	lines := make([]string, 0, len(books))
	for _, book := range books {
		lines = append(lines, SearchLine(book))
	}
	return strings.Join(lines, "\n")
}

// SearchLine is "ID: Title by Author (Available|Borrowed)".
func SearchLine(book catalog.Book) string {
	state := "Available"
	if !book.Available {
		state = "Borrowed"
	}
	if book.Author == "" {
		return fmt.Sprintf("%s: %s (%s)", book.ID, book.Title, state)
	}
	return fmt.Sprintf("%s: %s by %s (%s)", book.ID, book.Title, book.Author, state)
}

// BookDetail shows one book with its keywords and reviews.
func BookDetail(format Format, book catalog.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", SearchLine(book))
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(book.Keywords, ", "))
	if len(book.Reviews) == 0 {
		b.WriteString("No reviews.")
		return b.String()
	}
	rows := make([][]string, 0, len(book.Reviews))
	for i, review := range book.Reviews {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			review.Label.String(),
			strconv.FormatFloat(review.Score, 'f', 3, 64),
			review.Text,
		})
	}
	b.WriteString(renderTable(format,
		[]string{"#", "Sentiment", "Score", "Review"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
	))
	return b.String()
}

// StatsLine summarizes the catalog in one line.
func StatsLine(stats catalog.Stats) string {
	return fmt.Sprintf("%d books (%d available, %d borrowed) · %d borrowers · reviews: %d positive, %d negative, %d neutral",
		stats.Books, stats.Available, stats.Borrowed, stats.Borrowers,
		stats.PositiveReviews, stats.NegativeReviews, stats.NeutralReviews)
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
