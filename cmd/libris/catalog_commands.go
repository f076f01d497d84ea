package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"libris/internal/catalog"
	"libris/internal/desk"
)

func newBooksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List every book in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			books := cat.ListBooks()
			if ctx.jsonOutput() {
				return writeJSON(cmd, books)
			}
			printLine(cmd, desk.BooksTable(tableFormat(cmd.OutOrStdout()), books))
			return nil
		},
	}
}

func newBorrowersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "borrowers",
		Short: "List every borrower and what they hold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			borrowers := cat.ListBorrowers()
			if ctx.jsonOutput() {
				return writeJSON(cmd, borrowers)
			}
			printLine(cmd, desk.BorrowersTable(tableFormat(cmd.OutOrStdout()), borrowers))
			return nil
		},
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Find books by title or author words, tolerating typos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			books := cat.Search(strings.Join(args, " "))
			if ctx.jsonOutput() {
				return writeJSON(cmd, books)
			}
			printLine(cmd, desk.SearchResults(books))
			return nil
		},
	}
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Map free-form input to a single book or borrower id",
	}

	resolver := func(kind string, resolve func(*catalog.Catalog, string) (string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   kind + " <text...>",
			Short: fmt.Sprintf("Resolve an id, name, or word to a %s id", kind),
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := ctx.ensureCatalog()
				if err != nil {
					return err
				}
				input := strings.Join(args, " ")
				id, err := resolve(cat, input)
				if ctx.jsonOutput() {
					if encErr := writeJSON(cmd, newResolution(input, id, err)); encErr != nil {
						return encErr
					}
					return err
				}
				if err != nil {
					return err
				}
				printLine(cmd, id)
				return nil
			},
		}
	}

	resolveCmd.AddCommand(resolver("book", (*catalog.Catalog).ResolveBook))
	resolveCmd.AddCommand(resolver("borrower", (*catalog.Catalog).ResolveBorrower))
	return resolveCmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize books, loans, and review sentiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			stats := cat.Stats()
			if ctx.jsonOutput() {
				return writeJSON(cmd, stats)
			}
			printLine(cmd, desk.StatsLine(stats))
			return nil
		},
	}
}
