// termcompat - cross-platform screen clearing and single-keystroke input
package main

import (
	"os"

	"github.com/kannan/termcompat/internal/cli"
	"github.com/kannan/termcompat/internal/console"
)

func main() {
	// The menu is launched when:
	// 1. No command-line arguments (just "termcompat")
	// 2. stdin and stdout are both terminals

	if shouldRunUI() {
		cli.RunMenu()
		return
	}

	cli.Execute()
}

// shouldRunUI determines if the interactive menu should be launched.
func shouldRunUI() bool {
	if len(os.Args) > 1 {
		return false
	}

	return console.IsTerminal(os.Stdin) && console.IsTerminal(os.Stdout)
}
