package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamdash/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example config file",
	Long: `Write an example config.toml.

Without a path the file goes to the default location
($XDG_CONFIG_HOME/streamdash/config.toml). With --dataset the file is a
plain config pointing at that CSV instead of the commented template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	var err error
	if datasetPath != "" {
		err = writeDatasetConfig(path, datasetPath)
	} else {
		err = config.WriteDefault(path, initForce)
	}
	if errors.Is(err, config.ErrExists) {
		return fmt.Errorf("%w, use --force to overwrite", err)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", path)
	if datasetPath == "" {
		fmt.Fprintln(out, "Edit dataset.path, then run 'streamdash config test'.")
	}
	return nil
}

func writeDatasetConfig(path, dataset string) error {
	abs, err := filepath.Abs(dataset)
	if err != nil {
		return err
	}
	cfg := config.Default()
	cfg.Dataset.Path = abs
	return cfg.Write(path, initForce)
}
