package main

import (
	"fmt"
	"os"

	"github.com/uzpay-labs/fraudscope/internal/cli"
)

// stderrNotifier surfaces API connection notices on stderr for the one-shot
// commands, taking the place of the console's modal.
type stderrNotifier struct{}

func (stderrNotifier) Notify(title, message string) {
	fmt.Fprintln(os.Stderr, cli.FormatError(title+": "+message))
}
