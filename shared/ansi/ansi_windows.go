//go:build windows

// Package ansi turns on escape sequence handling where the terminal needs it.
package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI switches stdout to virtual terminal processing so banner and
// table colors render on Windows consoles.
func EnableANSI() {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return
	}

	_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
