package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the companion menu",
	Long: `Start the companion in interactive menu mode.

Entries:
  Bubble Pop  - The mini-game
  Chatbot     - A short scripted chat
  Mood Tips   - A tip and a music genre for each emotion
  Quit

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back to the menu
  Q            - Quit

Examples:
  bubblepop menu
  bubblepop menu --log-file bubblepop.log -v`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	if err := tui.RunSession(cfg, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
