// Package log prints colored status lines to stderr.
package log

import (
	"os"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed).FprintfFunc()
	yellow = color.New(color.FgYellow).FprintfFunc()
	blue   = color.New(color.FgBlue).FprintfFunc()
)

// ErrorMsg prints an error message to stderr in red.
func ErrorMsg(format string, a ...any) {
	red(os.Stderr, "[!] Error: "+format+"\n", a...)
}

// WarnMsg prints a warning to stderr in yellow.
func WarnMsg(format string, a ...any) {
	yellow(os.Stderr, "[-] "+format+"\n", a...)
}

// InfoMsg prints an informational message to stderr in blue.
func InfoMsg(format string, a ...any) {
	blue(os.Stderr, "[+] "+format+"\n", a...)
}
