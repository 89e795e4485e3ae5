//go:build vision || alldemos

package main

import (
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
	"github.com/thirukguru/mylib-demo/service/vision"
)

func visionDemos(cfg model.Config) []orchestrator.Demo {
	return []orchestrator.Demo{vision.NewService(cfg.Vision, cfg.WorkDir)}
}
