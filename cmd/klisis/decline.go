package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/klisis/internal/application/handlers"
	"github.com/ersonp/klisis/internal/domain/entities"
	"github.com/ersonp/klisis/internal/infrastructure/parsers"
)

type declineFlags struct {
	fromStr     string
	outfile     string
	withArticle bool
	format      string
	save        bool
	workers     int
}

func newDeclineCmd() *cobra.Command {
	var flags declineFlags

	cmd := &cobra.Command{
		Use:   "decline [file]",
		Short: "Decline nouns",
		Long: `Declines nouns given as "nominative, genitive, article".

Without --outfile the input is a single noun and its eight forms are printed.
With --outfile every row of the input is declined and written to the file,
the bare forms row followed by the forms-with-article row.`,
		Example: `  klisis decline -s "λογος, λογου, ὁ"
  klisis decline -w nouns.txt
  klisis decline nouns.csv -o paradigms.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecline(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.fromStr, "from-str", "s", "", "Read input from this string instead of a file")
	cmd.Flags().StringVarP(&flags.outfile, "outfile", "o", "", "Decline every row and write the paradigms to this file")
	cmd.Flags().BoolVarP(&flags.withArticle, "with-article", "w", false, "Print forms with their article")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Outfile format (csv, json); defaults to the outfile extension")
	cmd.Flags().BoolVar(&flags.save, "save", false, "Keep the built paradigms in the history store")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Number of nouns declined in parallel (default from config)")

	return cmd
}

func runDecline(cmd *cobra.Command, args []string, flags declineFlags) error {
	var file string
	if len(args) > 0 {
		file = args[0]
	}

	switch {
	case file == "" && flags.fromStr == "":
		return errors.New("a file or --from-str is required")
	case file != "" && flags.fromStr != "":
		return errors.New("give either a file or --from-str, not both")
	}

	if flags.format != "" && !contains(validOutputFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validOutputFormats)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeclineHandler(flags.workers, func(h *handlers.DeclineHandler, d *Deps) error {
		if flags.save && !d.Config.Store.Enabled {
			return errStoreDisabled
		}

		if file != "" {
			if err := d.CleanHandler.RequireClean(file); err != nil {
				return err
			}
		}

		if flags.outfile == "" {
			input := flags.fromStr
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading file: %w", err)
				}
				input = string(data)
			}

			noun, err := h.HandleTriple(ctx, input, flags.save)
			if err != nil {
				return err
			}

			withArticle := d.Config.Output.WithArticle
			if cmd.Flags().Changed("with-article") {
				withArticle = flags.withArticle
			}
			fmt.Fprintln(out, formatForms(noun, withArticle, d.Config.Output.Separator))
			return nil
		}

		opts := handlers.DeclineOptions{Save: flags.save}
		var result *handlers.DeclineResult
		var err error
		if file != "" {
			result, err = h.HandleFile(ctx, file, opts)
		} else {
			result, err = h.HandleBatch(ctx, strings.NewReader(flags.fromStr), &parsers.CSVParser{}, opts)
		}
		if err != nil {
			return err
		}

		for _, skipped := range result.Skipped {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %v\n", skipped)
		}

		format := outfileFormat(flags.format, flags.outfile, d.Config.Output.Format)
		if err := writeParadigms(flags.outfile, format, result.Nouns); err != nil {
			return err
		}

		fmt.Fprintf(out, "Declined %d nouns to %s, %d skipped\n", len(result.Nouns), flags.outfile, len(result.Skipped))
		if result.Saved > 0 {
			fmt.Fprintf(out, "Saved %d paradigms to history\n", result.Saved)
		}
		return nil
	})
}

// formatForms joins the eight forms of a built noun in slot order.
func formatForms(noun *entities.Noun, withArticle bool, separator string) string {
	if withArticle {
		return strings.Join(noun.FormsWithArticle, separator)
	}
	return strings.Join(noun.Forms, separator)
}

// outfileFormat picks the flag value, then a .json extension, then the configured default.
func outfileFormat(flagFormat, outfile, configured string) string {
	if flagFormat != "" {
		return flagFormat
	}
	if strings.EqualFold(filepath.Ext(outfile), ".json") {
		return "json"
	}
	if configured != "" {
		return configured
	}
	return "csv"
}

func writeParadigms(path, format string, nouns []*entities.Noun) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := formatParadigms(f, format, nouns); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

func formatParadigms(w io.Writer, format string, nouns []*entities.Noun) error {
	switch format {
	case "json":
		return formatParadigmsJSON(w, nouns)
	case "csv":
		return formatParadigmsCSV(w, nouns)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// formatParadigmsCSV writes two rows per noun: the bare forms, then the forms with article.
func formatParadigmsCSV(w io.Writer, nouns []*entities.Noun) error {
	writer := csv.NewWriter(w)

	for _, n := range nouns {
		if err := writer.Write(n.Forms); err != nil {
			return err
		}
		if err := writer.Write(n.FormsWithArticle); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatParadigmsJSON(w io.Writer, nouns []*entities.Noun) error {
	if nouns == nil {
		nouns = []*entities.Noun{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(nouns)
}
