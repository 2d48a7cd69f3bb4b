// bubblepop is a terminal mood companion built around the Bubble Pop mini-game.
//
// Usage:
//
//	bubblepop play              - Play Bubble Pop
//	bubblepop menu              - Companion menu: game, chatbot, mood tips
//	bubblepop serve             - Start SSH server for remote play
//	bubblepop simulate          - Run a headless game and print statistics
//	bubblepop tip <emotion>     - Print a tip and a music genre for an emotion
//	bubblepop chat              - Talk to the chatbot
//	bubblepop config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Bubble Pop config YAML
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file (TUI commands log nowhere by default)
//	--verbose          - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblepop",
	Short: "Bubble Pop - a mood companion for your terminal",
	Long: `Bubble Pop is a terminal mood companion: pop rising bubbles with the
mouse, chat with a tiny bot, or get a tip for how you feel.

Available commands:
  play      - Play Bubble Pop directly
  menu      - Interactive companion menu
  serve     - Start SSH server for remote play
  simulate  - Headless game with random pops
  tip       - Tip and music genre for an emotion
  chat      - Chatbot
  config    - Show the effective configuration

Examples:
  bubblepop play
  bubblepop menu
  bubblepop serve --ssh :2222
  bubblepop simulate --duration 2m --pop-rate 0.6
  bubblepop tip happy`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to Bubble Pop config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// mustLoadConfig loads the game configuration or exits.
func mustLoadConfig() config.BubbleConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger returns a logger writing to --log-file, or to fallback when the
// flag is unset. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bubblepop",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// mustLogger is newLogger that exits on failure.
func mustLogger(fallback io.Writer) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	return rt
}
