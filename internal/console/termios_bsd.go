//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package console

import "golang.org/x/sys/unix"

type termiosReq = uint

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetNow     = unix.TIOCSETA
	ioctlSetDrain   = unix.TIOCSETAW
)
