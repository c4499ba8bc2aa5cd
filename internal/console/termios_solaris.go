package console

import "golang.org/x/sys/unix"

// Solaris and illumos take signed ioctl requests.
type termiosReq = int

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetNow     = unix.TCSETS
	ioctlSetDrain   = unix.TCSETSW
)
