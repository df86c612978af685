package main

import (
	"github.com/spf13/cobra"

	"github.com/vmunix/streamdash/internal/render"
)

var (
	viewFlags selectionFlags
	topFlag   int
	barWidth  int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show KPIs, charts and insight for a selection",
	Long: `Filter the catalog and print the dashboard for the result.

Examples:
  streamdash view                                  # Whole catalog
  streamdash view --year-min 2019 --year-max 2020  # Release years 2019-2020
  streamdash view --country India --category Movie # Indian movies
  streamdash view --genre Comedies --json          # JSON summary`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewFlags.register(viewCmd)
	viewCmd.Flags().IntVar(&topFlag, "top", 0, "Entries in the country and genre charts (default: dashboard.top_n)")
	viewCmd.Flags().IntVar(&barWidth, "width", render.DefaultBarWidth, "Length of the longest chart bar")
}

func runView(cmd *cobra.Command, _ []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}

	facets := engine.Facets()
	sel, err := viewFlags.selection(facets)
	if err != nil {
		return err
	}
	view := engine.Apply(sel)

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), view.Summary())
	}
	warnSuggestions(cmd.ErrOrStderr(), facets, sel)
	return render.View(cmd.OutOrStdout(), view, barWidth)
}
