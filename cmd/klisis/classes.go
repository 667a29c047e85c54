package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/klisis/internal/domain/entities"
)

func newClassesCmd() *cobra.Command {
	var gender string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the declension classes and their endings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd.OutOrStdout(), gender)
		},
	}

	cmd.Flags().StringVarP(&gender, "gender", "g", "", "Also show the articles for this gender (ὁ, ἡ, το or masculine, feminine, neuter)")

	return cmd
}

func runClasses(w io.Writer, genderToken string) error {
	if genderToken != "" {
		gender, err := parseGenderFlag(genderToken)
		if err != nil {
			return err
		}
		articles := gender.Articles()
		fmt.Fprintf(w, "%-9s %-20s %s\n\n", "articles", gender, strings.Join(articles[:], ", "))
	}

	for _, class := range entities.AllClasses {
		fmt.Fprintf(w, "%-9s %-20s %s\n", class, class.Exemplar(), formatEndings(class.Endings()))
	}
	return nil
}

// parseGenderFlag accepts an article token (ὁ, ἡ, το) or a gender name (masculine, ...).
func parseGenderFlag(value string) (entities.Gender, error) {
	gender, err := entities.ParseGender(value)
	if err == nil {
		return gender, nil
	}
	if named, ok := entities.GenderFromName(value); ok {
		return named, nil
	}
	return "", err
}

// formatEndings joins endings in slot order, showing an empty ending as "-".
func formatEndings(endings entities.Endings) string {
	parts := make([]string, 0, len(endings))
	for _, e := range endings {
		if e == "" {
			e = "-"
		}
		parts = append(parts, e)
	}
	return strings.Join(parts, ", ")
}
