//go:build !windows

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorFGBG(t *testing.T) {
	tests := []struct {
		raw  string
		bg   int
		ok   bool
		blue bool
	}{
		{"", 0, false, false},
		{"15;0", 0, true, false},
		{"7;4", 4, true, true},
		{"0;default;12", 12, true, true},
		{"15;", 0, false, false},
		{"15;99", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			bg, ok := parseColorFGBG(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bg, bg)

			t.Setenv("COLORFGBG", tt.raw)
			assert.Equal(t, tt.blue, IsBlueBackground())
		})
	}
}
