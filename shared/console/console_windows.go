//go:build windows

// Package console inspects the terminal the demo prints to.
package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const backgroundBlue = 0x0010

// Background returns the console background attribute bits shifted down to
// a 0-15 color index.
func Background() (int, bool) {
	handle := windows.Handle(os.Stdout.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return 0, false
	}
	return int(info.Attributes>>4) & 0x0f, true
}

// IsBlueBackground reports whether the console background has the blue bit set.
func IsBlueBackground() bool {
	bg, ok := Background()
	return ok && bg&(backgroundBlue>>4) != 0
}
