package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/klisis/internal/application/handlers"
	"github.com/ersonp/klisis/internal/domain/entities"
)

type historyFlags struct {
	limit  int
	class  string
	lemma  string
	format string
}

func newHistoryCmd() *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved paradigms",
		Long:  "Lists paradigms saved with 'klisis decline --save', newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultHistoryLimit, "Maximum number of paradigms to display")
	cmd.Flags().StringVarP(&flags.class, "class", "c", "", "Filter by declension class")
	cmd.Flags().StringVar(&flags.lemma, "lemma", "", "Show paradigms for this nominative")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "Output format (table, json, csv)")

	return cmd
}

func runHistory(cmd *cobra.Command, flags historyFlags) error {
	if !contains(validHistoryFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validHistoryFormats)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withHistoryHandler(func(h *handlers.HistoryHandler) error {
		paradigms, err := h.HandleList(ctx, handlers.HistoryOptions{
			Limit: flags.limit,
			Class: flags.class,
			Lemma: flags.lemma,
		})
		if err != nil {
			return err
		}

		switch flags.format {
		case "json":
			return formatHistoryJSON(out, paradigms)
		case "csv":
			return formatHistoryCSV(out, paradigms)
		}

		if len(paradigms) == 0 {
			fmt.Fprintln(out, "No paradigms found.")
			return nil
		}

		count, _ := h.HandleCount(ctx)
		return formatHistoryTable(out, paradigms, count)
	})
}

func formatHistoryTable(w io.Writer, paradigms []*entities.Paradigm, totalCount int) error {
	if totalCount > 0 {
		fmt.Fprintf(w, "Showing %d of %d paradigms:\n\n", len(paradigms), totalCount)
	}

	for _, p := range paradigms {
		fmt.Fprintf(w, "ID: %s\n", p.ID)
		fmt.Fprintf(w, "  %s, %s (%s, %s) saved %s\n", p.Nominative, p.Genitive, p.Gender, p.Class, p.CreatedAt.Format(time.DateTime))
		for slot := entities.NominativeSingular; slot < entities.SlotCount; slot++ {
			fmt.Fprintf(w, "  %-9s %s\n", slot, p.FormsWithArticle[slot])
		}
		fmt.Fprintln(w)
	}
	return nil
}

func formatHistoryJSON(w io.Writer, paradigms []*entities.Paradigm) error {
	if paradigms == nil {
		paradigms = []*entities.Paradigm{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(paradigms)
}

// slotColumn turns a slot name such as "nom. sg." into a column name such as "nom_sg".
var slotColumn = strings.NewReplacer(". ", "_", ".", "")

func formatHistoryCSV(w io.Writer, paradigms []*entities.Paradigm) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "nominative", "genitive", "gender", "class", "stem", "created_at"}
	for slot := entities.NominativeSingular; slot < entities.SlotCount; slot++ {
		header = append(header, slotColumn.Replace(slot.String()))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, p := range paradigms {
		row := []string{
			p.ID,
			p.Nominative,
			p.Genitive,
			string(p.Gender),
			string(p.Class),
			p.Stem,
			p.CreatedAt.Format(time.RFC3339),
		}
		row = append(row, p.Forms...)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
