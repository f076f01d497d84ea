package desk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"libris/internal/catalog"
	"libris/internal/logging"
)

var errCancelled = errors.New("cancelled")

// Desk runs shell commands against one catalog.
type Desk struct {
	catalog *catalog.Catalog
	source  LineSource
	out     io.Writer
	format  Format
	logger  *slog.Logger

	root *cobra.Command
	done bool
}

// Option customizes a Desk.
type Option func(*Desk)

// WithFormat selects the table style.
func WithFormat(format Format) Option {
	return func(d *Desk) {
		d.format = format
	}
}

// WithLogger attaches a logger; desk entries carry component=desk.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Desk) {
		d.logger = logging.NewComponentLogger(logger, "desk")
	}
}

// New returns a desk reading from source and writing to out.
func New(c *catalog.Catalog, source LineSource, out io.Writer, opts ...Option) *Desk {
	d := &Desk{
		catalog: c,
		source:  source,
		out:     out,
		format:  Plain,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.root = newCommandTree(d)
	return d
}

// Run prints a banner and executes lines until exit, end of input, or ctx
// is done. Command failures are reported and the loop continues; only
// input errors end it early.
func (d *Desk) Run(ctx context.Context) error {
	fmt.Fprintf(d.out, "libris desk: %s\n", StatsLine(d.catalog.Stats()))
	fmt.Fprintln(d.out, "Type 'help' for commands, 'exit' to leave.")

	for !d.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := d.source.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := d.Exec(line); err != nil {
			var inputErr *inputError
			if errors.As(err, &inputErr) {
				return inputErr.err
			}
			d.report(err)
		}
	}
	return nil
}

// Exec runs one command line. Blank lines and lines starting with '#' are
// ignored.
func (d *Desk) Exec(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	args, err := SplitArgs(trimmed)
	if err != nil {
		return err
	}

	d.logger.Debug("command", logging.String(logging.FieldCommand, args[0]))
	d.root.SetArgs(args)
	err = d.root.Execute()
	if err != nil && !errors.Is(err, errCancelled) {
		d.logger.Info("command failed",
			logging.String(logging.FieldCommand, args[0]),
			logging.Reason(catalog.Kind(err)),
			logging.Error(err),
		)
	}
	return err
}

// Done reports whether an exit command has run.
func (d *Desk) Done() bool {
	return d.done
}

func (d *Desk) report(err error) {
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(d.out, "cancelled")
		return
	}
	fmt.Fprintf(d.out, "error: %v\n", err)
}

// inputError marks a LineSource failure while prompting so Run can stop.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// ask prompts for one value. A blank answer cancels when required and
// yields "" otherwise. End of input also cancels.
func (d *Desk) ask(label string, required bool) (string, error) {
	value, err := d.source.Prompt(label)
	if errors.Is(err, io.EOF) {
		return "", errCancelled
	}
	if err != nil {
		return "", &inputError{err: err}
	}
	value = strings.TrimSpace(value)
	if value == "" && required {
		return "", errCancelled
	}
	return value, nil
}

// argOrAsk returns args[i] or prompts for it.
func (d *Desk) argOrAsk(args []string, i int, label string, required bool) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return d.ask(label, required)
}

// restOrAsk joins args[i:] into one value or prompts for it.
func (d *Desk) restOrAsk(args []string, i int, label string) (string, error) {
	if i < len(args) {
		return strings.Join(args[i:], " "), nil
	}
	return d.ask(label, true)
}
