//go:build !windows && !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package console

import (
	"errors"
	"io"
	"os"
)

var errNoRawMode = errors.New("raw mode unsupported on this platform")

// lineConsole reads one byte without touching the terminal mode. Input
// stays line-buffered and echoed.
type lineConsole struct {
	in  io.Reader
	out io.Writer
}

func newPlatformConsole(in, out *os.File) Console {
	return &lineConsole{in: in, out: out}
}

func (c *lineConsole) ClearScreen() {
	runClear(c.out)
}

func (c *lineConsole) ReadKey() Key {
	var fails failures
	var buf [1]byte

	fails.note("raw mode", errNoRawMode)
	n, err := c.in.Read(buf[:])
	if err != nil && !errors.Is(err, io.EOF) {
		fails.note("read", err)
	}
	return Key{Char: buf[0], N: n, Err: fails.err()}
}
