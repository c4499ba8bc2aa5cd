package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the result of configuration validation.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []string
}

// menuKeys are the bytes the interactive menu binds to actions.
const menuKeys = "123"

// Validate checks the configuration for errors and warnings.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}

	if strings.TrimSpace(c.Name) == "" {
		result.addWarning("name is empty; the console title will be blank")
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "warning": true, "error": true,
	}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		result.addError("logging.level", fmt.Sprintf("unknown level '%s'; use debug, info, warn or error", c.Logging.Level))
	}

	switch q := c.Menu.QuitKey; {
	case len(q) != 1:
		result.addError("menu.quit_key", "quit key must be exactly one character")
	case q[0] < 0x21 || q[0] > 0x7e:
		result.addError("menu.quit_key", "quit key must be a printable ASCII character")
	case strings.Contains(menuKeys, q):
		result.addError("menu.quit_key", fmt.Sprintf("quit key '%s' is already bound to a menu action", q))
	}

	if strings.TrimSpace(c.Menu.Title) == "" {
		result.addWarning("menu.title is empty")
	}
	if strings.TrimSpace(c.Menu.ContinuePrompt) == "" {
		result.addWarning("menu.continue_prompt is empty; the menu will wait for a key without saying so")
	}

	return result
}

// addError adds an error and marks the result as invalid.
func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// addWarning adds a warning without invalidating the result.
func (r *ValidationResult) addWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// String returns a human-readable validation summary.
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if r.Valid {
		sb.WriteString("Configuration is valid\n")
	} else {
		sb.WriteString("Configuration has errors:\n")
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  ✗ %s: %s\n", err.Field, err.Message))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warn))
		}
	}

	return sb.String()
}

// MustValidate validates the config and returns an error if invalid.
func (c *Config) MustValidate() error {
	result := c.Validate()
	if !result.Valid {
		var errMsgs []string
		for _, e := range result.Errors {
			errMsgs = append(errMsgs, e.Error())
		}
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
