package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Strip accents from an input file",
		Long:  "Removes acute, grave and circumflex accents, keeping breathings and iota subscript, so the file can be declined.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runClean(cmd *cobra.Command, file, output string) error {
	return withDeps(func(d *Deps) (err error) {
		var w io.Writer
		var f *os.File

		if output != "" {
			f, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing file: %w", cerr)
				}
			}()
			w = f
		} else {
			w = cmd.OutOrStdout()
		}

		lines, err := d.CleanHandler.Handle(file, w)
		if err != nil {
			return err
		}

		if output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d lines to %s\n", lines, output)
		}
		return nil
	})
}
