package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/klisis/internal/application/handlers"
)

func newForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <id>",
		Short: "Remove a saved paradigm",
		Args:  cobra.ExactArgs(1),
		RunE:  runForget,
	}
}

func runForget(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	return withHistoryHandler(func(h *handlers.HistoryHandler) error {
		p, err := h.HandleDelete(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Forgot %s (%s, %s)\n", p.ID, p.Nominative, p.Genitive)
		return nil
	})
}
