package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	require.NoError(t, w.Close())
	os.Stderr = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string, ...any)
		prefix string
	}{
		{"error", ErrorMsg, "[!] Error: "},
		{"warn", WarnMsg, "[-] "},
		{"info", InfoMsg, "[+] "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStderr(t, func() { tt.fn("value %d", 42) })
			assert.Contains(t, out, tt.prefix+"value 42")
			assert.Contains(t, out, "\n")
		})
	}
}
