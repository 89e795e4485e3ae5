//go:build fsutil || alldemos

package main

import (
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/fsutil"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
)

func fsutilDemos(cfg model.Config) []orchestrator.Demo {
	svc := fsutil.NewService(cfg.Filesystem, cfg.DateTime, cfg.WorkDir)
	return []orchestrator.Demo{
		orchestrator.DemoFunc(svc.RunFilesystem),
		orchestrator.DemoFunc(svc.RunDateTime),
	}
}
