package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bubble Pop",
	Long: `Play Bubble Pop. Bubbles rise from the bottom of the field; click
them before they float off the top. Every escaped bubble costs a life.

Controls:
  Left click  - Pop a bubble
  R           - Restart
  Ctrl+S      - Save a screenshot to ~/.bubblepop/screenshots
  ?           - More help
  Esc/B/Q     - Quit

Examples:
  bubblepop play
  bubblepop play --seed 42
  bubblepop play --config ./my-bubblepop.yaml
  BUBBLEPOP_INITIAL_LIVES=3 bubblepop play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	if err := tui.Run(cfg, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
