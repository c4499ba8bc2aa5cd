package console

import "golang.org/x/sys/unix"

type termiosReq = int

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetNow     = unix.TCSETS
	ioctlSetDrain   = unix.TCSETSW
)
