//go:build !vision && !alldemos

package main

import (
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
)

func visionDemos(model.Config) []orchestrator.Demo {
	return []orchestrator.Demo{orchestrator.Disabled("vision", "Vision", "vision")}
}
