//go:build windows

package console

import (
	"os"
	"os/exec"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                       = syscall.NewLazyDLL("kernel32.dll")
	setConsoleTitleProc            = kernel32.NewProc("SetConsoleTitleW")
	getConsoleScreenBufferInfoProc = kernel32.NewProc("GetConsoleScreenBufferInfo")
	fillConsoleOutputCharacterProc = kernel32.NewProc("FillConsoleOutputCharacterW")
	setConsoleCursorPositionProc   = kernel32.NewProc("SetConsoleCursorPosition")

	msvcrt    = syscall.NewLazyDLL("msvcrt.dll")
	getchProc = msvcrt.NewProc("_getch")
)

type coord struct {
	x int16
	y int16
}

// pack lays a COORD out the way it is passed by value to kernel32.
func (c coord) pack() uintptr {
	return uintptr(uint16(c.x)) | uintptr(uint16(c.y))<<16
}

type smallRect struct {
	left   int16
	top    int16
	right  int16
	bottom int16
}

type consoleScreenBufferInfo struct {
	size              coord
	cursorPosition    coord
	attributes        uint16
	window            smallRect
	maximumWindowSize coord
}

func setTitle(title string) {
	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	setConsoleTitleProc.Call(uintptr(unsafe.Pointer(titlePtr)))
}

// winConsole reads keys through the CRT, which is unbuffered and unechoed
// without any mode switching.
type winConsole struct {
	out *os.File
}

func newPlatformConsole(in, out *os.File) Console {
	return &winConsole{out: out}
}

// ClearScreen runs cmd /c cls. This works on all Windows versions including
// Windows 2008 R2; the Console API is used when cmd cannot be started.
func (c *winConsole) ClearScreen() {
	cmd := exec.Command("cmd", "/c", "cls")
	cmd.Stdout = c.out
	if err := cmd.Run(); err != nil {
		clearScreenAPI(windows.Handle(c.out.Fd()))
	}
}

// ReadKey returns the next byte from _getch. Extended keys arrive as two
// calls (0 or 0xE0, then the scan code); no attempt is made to combine them.
func (c *winConsole) ReadKey() Key {
	var fails failures

	if err := getchProc.Find(); err != nil {
		fails.note("_getch", err)
		return Key{Err: fails.err()}
	}
	r, _, _ := getchProc.Call()
	return Key{Char: byte(r), N: 1}
}

// clearScreenAPI fills the screen buffer with spaces and moves the cursor
// to the top-left corner.
func clearScreenAPI(handle windows.Handle) {
	if handle == 0 || handle == windows.InvalidHandle {
		return
	}

	var info consoleScreenBufferInfo
	ret, _, _ := getConsoleScreenBufferInfoProc.Call(uintptr(handle), uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return
	}

	consoleSize := uint32(info.size.x) * uint32(info.size.y)

	var written uint32
	origin := coord{x: 0, y: 0}
	fillConsoleOutputCharacterProc.Call(
		uintptr(handle),
		uintptr(' '),
		uintptr(consoleSize),
		origin.pack(),
		uintptr(unsafe.Pointer(&written)),
	)

	setConsoleCursorPositionProc.Call(uintptr(handle), origin.pack())
}
