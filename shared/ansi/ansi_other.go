//go:build !windows

// Package ansi turns on escape sequence handling where the terminal needs it.
package ansi

// EnableANSI does nothing outside Windows, where terminals handle escape
// sequences natively.
func EnableANSI() {}
