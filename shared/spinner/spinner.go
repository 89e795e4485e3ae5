// Package spinner shows progress while demos run.
package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner with the given message.
func StartSpinner(msg string) {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + msg
	loader.Start()
}

// UpdateSpinner replaces the message of a running spinner.
func UpdateSpinner(msg string) {
	if loader == nil {
		return
	}
	loader.Lock()
	loader.Suffix = " " + msg
	loader.Unlock()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
