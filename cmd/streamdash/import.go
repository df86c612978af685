package main

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/streamdash/internal/catalog"
	"github.com/vmunix/streamdash/internal/library"
	"github.com/vmunix/streamdash/internal/loader"
)

var importCmd = &cobra.Command{
	Use:   "import [csv]",
	Short: "Normalize a CSV into the SQLite cache",
	Long: `Read and normalize a catalog CSV and replace the SQLite cache with it.

Set dataset.source = "sqlite" to have streamdashd and the CLI read the cache
instead of the CSV.

Examples:
  streamdash import                  # Import the configured dataset.path
  streamdash import ./titles.csv     # Import a specific file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Dataset.Path
	switch {
	case len(args) > 0:
		path = args[0]
	case datasetPath != "":
		path = datasetPath
	}

	ds, err := catalog.LoadFile(path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	loader.Report(cliLogger(), ds.Stats())

	db, err := library.OpenDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	imp, err := library.NewStore(db).ReplaceAll(ds, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), imp)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %s titles from %s into %s\n",
		humanize.Comma(int64(imp.Rows)), path, cfg.Database.Path)
	if imp.DefaultedCategories > 0 {
		fmt.Fprintf(out, "  %s without a category (counted as %s)\n",
			humanize.Comma(int64(imp.DefaultedCategories)), catalog.UnknownCategory)
	}
	if imp.MissingDates > 0 {
		fmt.Fprintf(out, "  %s without a release date\n", humanize.Comma(int64(imp.MissingDates)))
	}
	return nil
}
