package main

import (
	"fmt"
	"strings"

	"lifebuf/internal/seed"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List seed strategies and built-in patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Seed strategies:")
		for _, name := range seed.Names() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "\nPatterns:")
		for _, name := range seed.Patterns() {
			cells, err := seed.PatternCells(name)
			if err != nil {
				return err
			}
			coords := make([]string, len(cells))
			for i, c := range cells {
				coords[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
			}
			fmt.Fprintf(out, "  %-12s %s\n", name, strings.Join(coords, " "))
		}
		return nil
	},
}
