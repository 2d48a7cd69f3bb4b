package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/companion"
	"github.com/vovakirdan/bubblepop/internal/platform/tui"
)

var tipCmd = &cobra.Command{
	Use:   "tip [emotion]",
	Short: "Print a tip and a music genre for an emotion",
	Long: `Print a random tip and the recommended music genre for an emotion.
Without an argument, opens the interactive mood tips table.

Known emotions: ` + strings.Join(companion.Emotions(), ", ") + `

Examples:
  bubblepop tip happy
  bubblepop tip Sad --seed 3
  bubblepop tip`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTip,
}

func runTip(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		if err := tui.RunTips(flagSeed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	emotion := companion.Normalize(args[0])

	tip, ok := companion.Tip(emotion, rand.New(rand.NewSource(seed)))
	if !ok {
		fmt.Fprintf(os.Stderr, "No tips available for %q.\n", args[0])
		fmt.Fprintf(os.Stderr, "Known emotions: %s\n", strings.Join(companion.Emotions(), ", "))
		os.Exit(1)
	}
	genre, _ := companion.Genre(emotion)

	fmt.Printf("Tip for %s: %s\n", emotion, tip)
	fmt.Printf("Recommended genre: %s\n", genre)
}
