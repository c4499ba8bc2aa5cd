package console

import "golang.org/x/sys/unix"

type termiosReq = uint

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetNow     = unix.TCSETS
	ioctlSetDrain   = unix.TCSETSW
)
