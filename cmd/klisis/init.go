package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/klisis/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	var store bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize klisis in the current directory",
		Long:  "Creates a .klisis directory with default configuration and, with --store, the paradigm history database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, store)
		},
	}

	cmd.Flags().BoolVar(&store, "store", false, "Enable the paradigm history store")

	return cmd
}

func runInit(cmd *cobra.Command, store bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(openStore).Handle(cmd.Context(), cwd, handlers.InitOptions{EnableStore: store})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	if result.StorePath != "" {
		fmt.Fprintf(out, "Created paradigm store: %s\n", result.StorePath)
	}
	fmt.Fprintln(out, "Klisis initialized successfully!")

	return nil
}
