package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamdash/internal/render"
)

var (
	titlesFlags  selectionFlags
	titlesLimit  int
	titlesOffset int
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "List the titles matching a selection",
	Long: `List the titles matching a selection, in dataset order.

Examples:
  streamdash titles --country India --limit 20
  streamdash titles --rating TV-MA --offset 20 --limit 20`,
	Args: cobra.NoArgs,
	RunE: runTitles,
}

func init() {
	rootCmd.AddCommand(titlesCmd)
	titlesFlags.register(titlesCmd)
	titlesCmd.Flags().IntVar(&titlesLimit, "limit", 25, "Maximum titles to list")
	titlesCmd.Flags().IntVar(&titlesOffset, "offset", 0, "Titles to skip")
}

func runTitles(cmd *cobra.Command, _ []string) error {
	if titlesLimit < 1 || titlesOffset < 0 {
		return fmt.Errorf("--limit must be positive and --offset non-negative")
	}

	engine, err := openEngine()
	if err != nil {
		return err
	}
	sel, err := titlesFlags.selection(engine.Facets())
	if err != nil {
		return err
	}

	view := engine.Apply(sel)
	total := len(view.Entries)
	start := min(titlesOffset, total)
	end := min(start+titlesLimit, total)
	page := view.Entries[start:end]

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"items":  page,
			"total":  total,
			"limit":  titlesLimit,
			"offset": titlesOffset,
		})
	}
	return render.Titles(cmd.OutOrStdout(), page, start, total)
}
