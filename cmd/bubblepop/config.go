package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Bubble Pop would play with, after the config
file and BUBBLEPOP_* environment overrides are applied.

Config lookup order:
  1. --config <path>
  2. ~/.bubblepop/configs/bubblepop.yaml
  3. ./configs/bubblepop.yaml
  4. Built-in defaults

Examples:
  bubblepop config
  bubblepop config --default > ~/.bubblepop/bubblepop.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default config file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	data, err := config.Marshal(mustLoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
