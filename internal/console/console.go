// Package console provides cross-platform console utilities: clearing the
// screen, reading a single unbuffered keystroke and setting the window title.
//
// The platform variant is chosen at build time. Windows delegates to the
// console's native facilities; POSIX targets switch the terminal out of
// canonical mode for the duration of one read.
package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kannan/termcompat/internal/logger"
)

// ScreenClearer erases the visible console and moves the cursor home.
type ScreenClearer interface {
	ClearScreen()
}

// KeyReader reads exactly one byte from standard input without waiting
// for Enter and without echoing it.
type KeyReader interface {
	ReadKey() Key
}

// Console is the pair of operations a platform provides.
type Console interface {
	ScreenClearer
	KeyReader
}

// Key is the outcome of a single raw read.
//
// Char is always set. It is 0 when the read did not populate it, which N
// tells apart from a real NUL keystroke: N is 1 when a byte was read and 0
// at end of input or after a failed read.
// Err joins every platform call that failed on the way; it is
// informational and never means the call was aborted.
type Key struct {
	Char byte
	N    int
	Err  error
}

// OpError records a failed platform call.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

var std = New(os.Stdin, os.Stdout)

// Default returns the console bound to the process's stdin and stdout.
func Default() Console {
	return std
}

// New returns the build target's console reading keys from in and
// clearing through out.
func New(in, out *os.File) Console {
	return newPlatformConsole(in, out)
}

// ClearScreen clears the process console. Failures are silent.
func ClearScreen() {
	std.ClearScreen()
}

// ReadKey blocks until one byte is available on stdin and returns it.
// On POSIX terminals the input mode is changed for the duration of the call
// and put back before it returns.
//
// The terminal mode is process-wide state and ReadKey does no locking:
// callers reading from more than one goroutine must serialise calls.
func ReadKey() byte {
	return std.ReadKey().Char
}

// IsTerminal reports whether f is a terminal, counting Cygwin and MSYS
// pseudo-terminals as one.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetTitle sets the console window title.
// On Windows, this uses the Windows API.
// On Linux/Unix, this is a no-op (terminals handle titles differently).
func SetTitle(title string) {
	setTitle(title)
}

// failures collects the platform errors of one operation and reports each
// to the diagnostic log as it happens.
type failures struct {
	errs []error
}

func (f *failures) note(op string, err error) {
	if err == nil {
		return
	}
	logger.With("op", op).Error("terminal call failed", "error", err)
	f.errs = append(f.errs, &OpError{Op: op, Err: err})
}

func (f *failures) err() error {
	return errors.Join(f.errs...)
}
