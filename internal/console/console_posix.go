//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package console

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// modeDevice is the terminal surface a raw read needs: attribute query,
// attribute set and a plain blocking read.
type modeDevice interface {
	GetAttr() (*unix.Termios, error)
	SetAttr(req termiosReq, t *unix.Termios) error
	Read(p []byte) (int, error)
}

// ttyDevice drives a real terminal file descriptor.
type ttyDevice struct {
	f *os.File
}

func (d ttyDevice) GetAttr() (*unix.Termios, error) {
	return unix.IoctlGetTermios(int(d.f.Fd()), ioctlGetTermios)
}

func (d ttyDevice) SetAttr(req termiosReq, t *unix.Termios) error {
	return unix.IoctlSetTermios(int(d.f.Fd()), req, t)
}

func (d ttyDevice) Read(p []byte) (int, error) {
	return d.f.Read(p)
}

type posixConsole struct {
	dev modeDevice
	out io.Writer
}

func newPlatformConsole(in, out *os.File) Console {
	return &posixConsole{dev: ttyDevice{f: in}, out: out}
}

func (c *posixConsole) ClearScreen() {
	runClear(c.out)
}

// ReadKey switches off canonical mode and echo, reads one byte and switches
// them back on. Every failing call is diagnosed and skipped over, so a value
// is always returned.
func (c *posixConsole) ReadKey() Key {
	var fails failures
	var buf [1]byte
	var n int

	func() {
		g := enterRaw(c.dev, &fails)
		defer g.restore()

		var err error
		if n, err = c.dev.Read(buf[:]); err != nil && !errors.Is(err, io.EOF) {
			fails.note("read", err)
		}
	}()

	return Key{Char: buf[0], N: n, Err: fails.err()}
}

// rawGuard holds the attribute set applied for one raw read.
type rawGuard struct {
	dev   modeDevice
	attrs unix.Termios
	fails *failures
}

// enterRaw queries the current attributes, turns off ICANON and ECHO and
// asks for a blocking single-byte read (VMIN=1, VTIME=0). A failed query
// leaves the zero value in place and the rest proceeds regardless.
func enterRaw(dev modeDevice, fails *failures) *rawGuard {
	g := &rawGuard{dev: dev, fails: fails}

	t, err := dev.GetAttr()
	if err != nil {
		fails.note("tcgetattr", err)
	} else {
		g.attrs = *t
	}

	g.attrs.Lflag &^= unix.ICANON
	g.attrs.Lflag &^= unix.ECHO
	g.attrs.Cc[unix.VMIN] = 1
	g.attrs.Cc[unix.VTIME] = 0

	if err := dev.SetAttr(ioctlSetNow, &g.attrs); err != nil {
		fails.note("tcsetattr ICANON", err)
	}
	return g
}

// restore turns ICANON and ECHO back on and applies the result once pending
// output has drained. Only those two flags are put back; VMIN and VTIME keep
// the raw values.
func (g *rawGuard) restore() {
	g.attrs.Lflag |= unix.ICANON
	g.attrs.Lflag |= unix.ECHO

	if err := g.dev.SetAttr(ioctlSetDrain, &g.attrs); err != nil {
		g.fails.note("tcsetattr ~ICANON", err)
	}
}
