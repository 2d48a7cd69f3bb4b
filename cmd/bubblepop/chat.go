package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubblepop/internal/companion"
	"github.com/vovakirdan/bubblepop/internal/platform/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the chatbot",
	Long: `Talk to the companion chatbot. In a terminal this opens the chat
window; with piped input every line gets a reply on stdout and "bye" ends
the conversation.

Examples:
  bubblepop chat
  echo "hi" | bubblepop chat`,
	Args: cobra.NoArgs,
	Run:  runChat,
}

func runChat(_ *cobra.Command, _ []string) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if err := tui.RunChat(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var transcript companion.Transcript
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		reply, ok := transcript.Send(scanner.Text())
		if !ok {
			continue
		}
		fmt.Println(reply)
		if companion.IsFarewell(scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
