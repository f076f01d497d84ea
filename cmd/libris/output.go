package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"libris/internal/catalog"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printLine writes text followed by a newline to the command's stdout.
func printLine(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), text)
}

type resolution struct {
	Input string `json:"input"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

func newResolution(input, id string, err error) resolution {
	r := resolution{Input: input, ID: id}
	if err != nil {
		r.Error = err.Error()
		r.Kind = catalog.Kind(err)
	}
	return r
}
