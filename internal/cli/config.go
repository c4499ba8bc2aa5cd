package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kannan/termcompat/internal/app"
	"github.com/kannan/termcompat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "Commands for managing termcompat configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new configuration file",
	Long: `Create a new termcompat.yaml configuration file with defaults.

Examples:
  termcompat config init
  termcompat config init --name kiosk
  termcompat config init --quit-key x -o ./conf/termcompat.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the configuration file.

Examples:
  termcompat config validate
  termcompat config validate -c /path/to/termcompat.yaml`,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the loaded configuration values",
	RunE:  runConfigShow,
}

var (
	configInitName    string
	configInitQuitKey string
	configInitOutput  string
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVar(&configInitName, "name", "termcompat", "instance name, also used as the console title")
	configInitCmd.Flags().StringVar(&configInitQuitKey, "quit-key", "q", "key that leaves the interactive menu")
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", config.DefaultConfigFile, "output file path")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configInitOutput); err == nil {
		return fmt.Errorf("config file already exists: %s\nUse --output to specify a different path", configInitOutput)
	}

	c := config.DefaultConfig()
	c.Name = configInitName
	c.Menu.QuitKey = configInitQuitKey
	if err := c.MustValidate(); err != nil {
		return err
	}

	if err := c.Save(configInitOutput); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Configuration file created: %s\n\n", configInitOutput)
	fmt.Fprintln(out, "📝 Next steps:")
	fmt.Fprintln(out, "   1. Run 'termcompat config validate' to verify")
	fmt.Fprintln(out, "   2. Run 'termcompat getch' and press a key")
	fmt.Fprintln(out, "   3. Run 'termcompat' on a terminal to open the menu")

	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// cfg is already loaded in PersistentPreRunE
	result := cfg.Validate()
	out := cmd.OutOrStdout()

	file := cfgFile
	if file == "" {
		file = config.DefaultConfigFile
	}
	fmt.Fprintln(out, "🔍 Configuration Validation")
	fmt.Fprintf(out, "   File: %s\n\n", file)

	if result.Valid {
		fmt.Fprintln(out, "✅ Configuration is VALID")
	} else {
		fmt.Fprintln(out, "❌ Configuration is INVALID")
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, result.String())

	if !result.Valid {
		return fmt.Errorf("configuration validation failed")
	}

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = "(stderr)"
	}

	fmt.Fprintln(out, "⌨️  termcompat - Configuration")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  Name:           %s\n", cfg.Name)
	fmt.Fprintf(out, "  Key reader:     %s\n", app.KeyVariant())
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "📜 Logging:")
	fmt.Fprintf(out, "   • Level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "   • Path:  %s\n", logPath)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "🧭 Menu:")
	fmt.Fprintf(out, "   • Title:          %s\n", cfg.Menu.Title)
	fmt.Fprintf(out, "   • Quit key:       %s\n", cfg.Menu.QuitKey)
	fmt.Fprintf(out, "   • Continue:       %s\n", cfg.Menu.ContinuePrompt)
	fmt.Fprintf(out, "   • Clear between:  %v\n", cfg.Menu.ClearBetween)

	return nil
}
