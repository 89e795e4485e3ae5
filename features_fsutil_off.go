//go:build !fsutil && !alldemos

package main

import (
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
)

func fsutilDemos(model.Config) []orchestrator.Demo {
	return []orchestrator.Demo{
		orchestrator.Disabled("fsutil", "Filesystem", "fsutil"),
		orchestrator.Disabled("fsutil", "DateTime", "fsutil"),
	}
}
