package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	datasetPath string
	serverURL   string
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "streamdash",
	Short: "Streaming catalog analytics dashboard",
	Long: `streamdash - streaming catalog analytics dashboard

Filter a streaming catalog by year, category, rating, country and genre,
and print the KPIs, charts and insight for the selection.

Run 'streamdashd' to serve the same views as a JSON API.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "CSV file to read instead of the configured dataset")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("streamdash {{.Version}}\n")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
