package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/klisis/internal/application/handlers"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report accented lines in an input file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := args[0]

	return withDeps(func(d *Deps) error {
		lines, err := d.CleanHandler.Check(file)
		if err != nil {
			return err
		}

		if len(lines) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s has no accents\n", file)
			return nil
		}

		for _, line := range lines {
			fmt.Fprintf(cmd.OutOrStdout(), "line %d contains accents\n", line)
		}
		return &handlers.AccentError{Path: file, Lines: lines}
	})
}
