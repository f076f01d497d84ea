package main

import (
	"os"

	"github.com/spf13/cobra"

	"libris/internal/desk"
	"libris/internal/logging"
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive circulation desk",
		Long: `Run the interactive circulation desk.

When stdin is a terminal the desk offers line editing, history, and command
completion. Otherwise commands are read one per line, so a script can be
piped in; prompts for missing arguments consume the following line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger.Info("shell started", logging.Bool("terminal", isTerminal(cmd.InOrStdin())))
			defer logger.Info("shell finished")

			if isTerminal(cmd.InOrStdin()) {
				term, err := desk.NewTerminal(desk.TerminalOptions{
					HistoryFile: cfg.Paths.HistoryFile,
					Stdin:       os.Stdin,
					Stdout:      cmd.OutOrStdout(),
					Stderr:      cmd.ErrOrStderr(),
				})
				if err != nil {
					return err
				}
				defer term.Close()

				d := desk.New(cat, term, term.Stdout(), desk.WithFormat(desk.Styled), desk.WithLogger(logger))
				return d.Run(cmd.Context())
			}

			source := desk.NewScriptSource(cmd.InOrStdin(), nil)
			d := desk.New(cat, source, cmd.OutOrStdout(), desk.WithFormat(tableFormat(cmd.OutOrStdout())), desk.WithLogger(logger))
			return d.Run(cmd.Context())
		},
	}
}
