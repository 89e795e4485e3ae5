//go:build !windows

// Package console inspects the terminal the demo prints to.
package console

import (
	"os"
	"strconv"
	"strings"
)

// Background returns the ANSI 16-color index of the terminal background as
// advertised by COLORFGBG.
func Background() (int, bool) {
	return parseColorFGBG(os.Getenv("COLORFGBG"))
}

func parseColorFGBG(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	parts := strings.Split(raw, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 || bg > 15 {
		return 0, false
	}
	return bg, true
}

// IsBlueBackground reports whether the terminal background is blue or bright blue.
func IsBlueBackground() bool {
	bg, ok := Background()
	return ok && (bg == 4 || bg == 12)
}
