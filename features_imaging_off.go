//go:build !imaging && !alldemos

package main

import (
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
)

func imagingDemos(model.Config) []orchestrator.Demo {
	return []orchestrator.Demo{orchestrator.Disabled("imaging", "Imaging", "imaging")}
}
