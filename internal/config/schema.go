// Package config provides YAML configuration loading and validation for termcompat.
package config

// Config represents the main configuration structure for termcompat.
type Config struct {
	Name    string  `yaml:"name"`
	Logging Logging `yaml:"logging"`
	Menu    Menu    `yaml:"menu"`
}

// Logging defines logging configuration.
type Logging struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Menu configures the single-key interactive menu.
type Menu struct {
	Title          string `yaml:"title"`
	QuitKey        string `yaml:"quit_key"`
	ContinuePrompt string `yaml:"continue_prompt"`
	ClearBetween   bool   `yaml:"clear_between"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name: "termcompat",
		Logging: Logging{
			Path:  "",
			Level: "warn",
		},
		Menu: Menu{
			Title:          "Terminal Compatibility Shim",
			QuitKey:        "q",
			ContinuePrompt: "Press any key to continue...",
			ClearBetween:   true,
		},
	}
}

// QuitByte returns the menu quit key as a byte, or 0 when it is not a
// single byte.
func (c *Config) QuitByte() byte {
	if len(c.Menu.QuitKey) != 1 {
		return 0
	}
	return c.Menu.QuitKey[0]
}
