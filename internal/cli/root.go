// Package cli provides command-line interface commands for termcompat.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kannan/termcompat/internal/app"
	"github.com/kannan/termcompat/internal/config"
	"github.com/kannan/termcompat/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "termcompat",
	Short: "termcompat - clear the screen and read single keystrokes on any terminal",
	Long: `termcompat is a small cross-platform terminal compatibility shim.

It provides:
  • Screen clearing through the platform's own facility (cls / clear)
  • Single-keystroke input without waiting for Enter and without echo
  • An interactive single-key menu for trying both out

Running without arguments on an interactive terminal opens the menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for certain commands
		if cmd.Name() == "version" || cmd.Name() == "init" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := logger.Init(loggerConfig(cfg, verbose)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
		}

		return nil
	},
}

// loggerConfig keeps stderr as the diagnostic stream; a configured log file
// receives a copy.
func loggerConfig(c *config.Config, verbose bool) logger.Config {
	level := c.Logging.Level
	if verbose {
		level = "debug"
	}
	return logger.Config{
		Path:    c.Logging.Path,
		Level:   level,
		Console: true,
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RunMenu runs the interactive menu command as if invoked with no
// arguments on a terminal.
func RunMenu() {
	rootCmd.SetArgs([]string{menuCmd.Name()})
	Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./termcompat.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(getchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information about termcompat",
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			fmt.Fprintln(cmd.OutOrStdout(), app.GetVersionInfo())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "termcompat v%s\n", app.GetVersion())
		}
	},
}
