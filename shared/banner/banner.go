// Package banner draws the program title at the top of table output.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/thirukguru/mylib-demo/shared/ansi"
	"github.com/thirukguru/mylib-demo/shared/console"
	"golang.org/x/term"
)

type bannerColor int

const (
	bannerGopherBlue bannerColor = iota
	bannerAmber
	bannerMint
	bannerCoral
	bannerViolet
	bannerSlate
)

var bannerTitleColors = []string{
	"\x1b[38;2;0;173;216m",   // Gopher Blue
	"\x1b[38;2;255;191;0m",   // Amber
	"\x1b[38;2;62;180;137m",  // Mint
	"\x1b[38;2;255;127;80m",  // Coral
	"\x1b[38;2;143;0;255m",   // Violet
	"\x1b[38;2;112;128;144m", // Slate
}

var bannerTitleColorNames = []string{
	"GopherBlue",
	"Amber",
	"Mint",
	"Coral",
	"Violet",
	"Slate",
}

const (
	bannerTitleColorDefault        = bannerGopherBlue
	bannerTitleColorBlueBackground = bannerAmber
	bannerTitleColorEnv            = "MYLIB_DEMO_BANNER_COLOR"
	defaultWidth                   = 80
)

var titleLines = []string{
	"███╗   ███╗██╗   ██╗██╗     ██╗██████╗ ",
	"████╗ ████║╚██╗ ██╔╝██║     ██║██╔══██╗",
	"██╔████╔██║ ╚████╔╝ ██║     ██║██████╔╝",
	"██║╚██╔╝██║  ╚██╔╝  ██║     ██║██╔══██╗",
	"██║ ╚═╝ ██║   ██║   ███████╗██║██████╔╝",
	"╚═╝     ╚═╝   ╚═╝   ╚══════╝╚═╝╚═════╝ ",
}

func printCenteredLines(w io.Writer, lines []string, width int) {
	for _, line := range lines {
		if pad := (width - utf8.RuneCountInString(line)) / 2; pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
		}
		fmt.Fprintln(w, line)
	}
}

func bannerTitleColor() bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))
	if raw == "" {
		return 0, false
	}

	for idx, name := range bannerTitleColorNames {
		if strings.EqualFold(raw, name) || raw == bannerTitleColors[idx] {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// DrawBannerTitle prints the title banner and a subtitle line to stdout.
func DrawBannerTitle(subtitle string) {
	ansi.EnableANSI()
	drawBanner(os.Stdout, terminalWidth(), bannerTitleColor(), subtitle)
}

func drawBanner(w io.Writer, width int, color bannerColor, subtitle string) {
	fmt.Fprint(w, bannerTitleColors[color])
	printCenteredLines(w, titleLines, width)
	fmt.Fprint(w, "\x1b[0m")
	if subtitle != "" {
		printCenteredLines(w, []string{subtitle}, width)
	}
	fmt.Fprintln(w)
}
