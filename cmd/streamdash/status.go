package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running server's dataset status",
	Long: `Query a running streamdashd for the loaded dataset and its normalization stats.

Examples:
  streamdash status
  streamdash status --server http://dash.local:8585 --json`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), status)
	}
	printStatusHuman(cmd.OutOrStdout(), serverURL, status)
	return nil
}

func printStatusHuman(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "Server:     %s (%s)\n", server, s.Status)
	fmt.Fprintf(w, "Source:     %s\n", s.Source)
	fmt.Fprintf(w, "Titles:     %s\n", humanize.Comma(int64(s.Titles)))
	if s.LastImport != nil {
		fmt.Fprintf(w, "Imported:   %s from %s (%s)\n",
			humanize.Comma(int64(s.LastImport.Rows)), s.LastImport.Source, humanize.Time(s.LastImport.ImportedAt))
	}

	fmt.Fprintln(w, "\nNormalization:")
	for _, row := range []struct {
		label string
		n     int
	}{
		{"No category", s.Stats.DefaultedCategories},
		{"No country", s.Stats.DefaultedCountries},
		{"No rating", s.Stats.DefaultedRatings},
		{"No date", s.Stats.MissingDates},
		{"No duration", s.Stats.MissingDurations},
		{"No show_id", s.Stats.SyntheticIDs},
		{"Dup show_id", s.Stats.DuplicateIDs},
	} {
		fmt.Fprintf(w, "  %-12s %s\n", row.label+":", humanize.Comma(int64(row.n)))
	}
}
