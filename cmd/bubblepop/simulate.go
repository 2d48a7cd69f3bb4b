package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/headless"
)

var (
	flagDuration   time.Duration
	flagPressEvery time.Duration
	flagPopRate    float64
	flagRestart    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and print statistics",
	Long: `Play Bubble Pop on a virtual clock without a terminal. A scripted
pointer presses at a fixed cadence; with probability --pop-rate it aims at
a live bubble, otherwise it misses. Runs are reproducible with --seed.

Examples:
  bubblepop simulate
  bubblepop simulate --duration 5m --pop-rate 0.8 --seed 42
  bubblepop simulate --pop-rate 0 --restart -v`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	defaults := headless.DefaultOptions()
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", defaults.Duration, "Virtual time to simulate")
	simulateCmd.Flags().DurationVar(&flagPressEvery, "press-every", defaults.PressEvery, "Interval between pointer presses")
	simulateCmd.Flags().Float64Var(&flagPopRate, "pop-rate", defaults.PopRate, "Chance in [0, 1] that a press aims at a bubble")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart after game over until the duration runs out")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	res, err := headless.Run(cfg, headless.Options{
		Duration:   flagDuration,
		PressEvery: flagPressEvery,
		PopRate:    flagPopRate,
		Seed:       flagSeed,
		Restart:    flagRestart,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bubble Pop - Simulation")
	fmt.Println()
	fmt.Printf("  %-10s  %v\n", "Elapsed", res.Elapsed)
	fmt.Printf("  %-10s  %d\n", "Sessions", res.Sessions)
	fmt.Printf("  %-10s  %s\n", "Phase", res.Phase)
	fmt.Printf("  %-10s  %d\n", "Score", res.Score)
	fmt.Printf("  %-10s  %d\n", "Best", res.BestScore)
	fmt.Printf("  %-10s  %d\n", "Lives", res.Lives)
	fmt.Println()
	fmt.Printf("  %-10s  %d\n", "Spawned", res.Spawned)
	fmt.Printf("  %-10s  %d\n", "Popped", res.Popped)
	fmt.Printf("  %-10s  %d\n", "Escaped", res.Escaped)
	fmt.Printf("  %-10s  %d (%d missed)\n", "Presses", res.Presses, res.Misses)
}
