// Package app provides application-level functionality for termcompat.
package app

import (
	"fmt"
	"runtime"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"
	// Commit is the git commit hash (set at build time).
	Commit = "unknown"
	// Date is the build date (set at build time).
	Date = "unknown"
)

// GetVersion returns the full version string.
func GetVersion() string {
	return fmt.Sprintf("%s (%s)", Version, Commit[:min(7, len(Commit))])
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() string {
	return fmt.Sprintf(`termcompat v%s
Commit: %s
Built:  %s
Go:     %s
OS:     %s/%s
Keys:   %s`,
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH, KeyVariant())
}

// KeyVariant names the key reader compiled into this binary.
func KeyVariant() string {
	switch runtime.GOOS {
	case "windows":
		return "console (_getch)"
	case "aix", "darwin", "dragonfly", "freebsd", "illumos", "linux", "netbsd", "openbsd", "solaris":
		return "posix (termios)"
	default:
		return "line-buffered fallback"
	}
}

// GetBanner returns the ASCII art banner.
func GetBanner() string {
	return `
╭──────────────────────────────────────╮
│  ▀█▀ █▀▀ █▀█ █▀▄▀█                   │
│   █  ██▄ █▀▄ █ ▀ █  compat  v` + fmt.Sprintf("%-8s", Version) + `│
╰──────────────────────────────────────╯
`
}
