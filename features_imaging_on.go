//go:build imaging || alldemos

package main

import (
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/imaging"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
)

func imagingDemos(cfg model.Config) []orchestrator.Demo {
	return []orchestrator.Demo{imaging.NewService(cfg.Imaging, cfg.WorkDir)}
}
