package main

import (
	"github.com/spf13/cobra"

	"github.com/vmunix/streamdash/internal/render"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the values each filter accepts",
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), engine.Facets())
	}
	return render.Facets(cmd.OutOrStdout(), engine.Facets())
}
