package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kannan/termcompat/internal/console"
	"github.com/kannan/termcompat/internal/interactive"
	"github.com/kannan/termcompat/internal/logger"
)

// newConsole is swapped out in tests.
var newConsole = console.Default

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the terminal screen",
	Long: `Clear the visible terminal and move the cursor to the top-left corner.

Uses "cmd /c cls" on Windows and the external "clear" command elsewhere.
Nothing is reported when the platform command is unavailable.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newConsole().ClearScreen()
	},
}

var getchCmd = &cobra.Command{
	Use:   "getch",
	Short: "Read single keystrokes without waiting for Enter",
	Long: `Read one byte at a time from standard input with line buffering and
echo switched off, printing one line per byte.

Multi-byte keys (arrows, function keys) arrive as separate bytes.

Examples:
  termcompat getch
  termcompat getch --count 3
  termcompat getch --format hex`,
	Args: cobra.NoArgs,
	RunE: runGetch,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive single-key menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.MustValidate(); err != nil {
			return err
		}
		console.SetTitle(cfg.Name)
		err := interactive.New(cfg, newConsole(), cmd.OutOrStdout()).Loop()
		if errors.Is(err, interactive.ErrInputClosed) {
			logger.Debug("menu stopped", "reason", err)
			return nil
		}
		return err
	},
}

var (
	getchCount  int
	getchFormat string
)

func init() {
	getchCmd.Flags().IntVarP(&getchCount, "count", "n", 1, "number of keystrokes to read")
	getchCmd.Flags().StringVarP(&getchFormat, "format", "f", "char", "output format: char, hex or dec")
}

func runGetch(cmd *cobra.Command, args []string) error {
	if getchCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", getchCount)
	}

	var format func(b byte) string
	switch getchFormat {
	case "char":
		format = interactive.Describe
	case "hex":
		format = func(b byte) string { return fmt.Sprintf("0x%02x", b) }
	case "dec":
		format = func(b byte) string { return fmt.Sprintf("%d", b) }
	default:
		return fmt.Errorf("unknown format %q: use char, hex or dec", getchFormat)
	}

	if !console.IsTerminal(os.Stdin) {
		logger.Warn("stdin is not a terminal; keys are read as plain bytes")
	}

	con := newConsole()
	for i := 0; i < getchCount; i++ {
		key := con.ReadKey()
		if key.N == 0 {
			logger.Debug("no more input", "read", i, "wanted", getchCount)
			break
		}
		fmt.Fprintln(cmd.OutOrStdout(), format(key.Char))
	}
	return nil
}
