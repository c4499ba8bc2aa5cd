//go:build !windows

package console

import (
	"io"
	"os/exec"
)

// setTitle is a no-op on non-Windows systems.
// Linux/Unix terminals handle titles via shell or terminal emulator.
func setTitle(title string) {
	// No-op on Linux/Unix
}

// runClear runs the external clear command against out. A missing binary,
// unknown $TERM or non-zero exit all leave the screen as it was.
func runClear(out io.Writer) {
	cmd := exec.Command("clear")
	cmd.Stdout = out
	_ = cmd.Run()
}
