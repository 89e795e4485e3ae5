package orchestrator

import (
	"context"
	"time"

	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/output"
	"github.com/thirukguru/mylib-demo/service/storage"
)

// Demo is one demo branch the orchestrator can run.
type Demo interface {
	Run(ctx context.Context) (model.DemoResult, error)
}

// DemoFunc adapts a function to the Demo interface.
type DemoFunc func(ctx context.Context) (model.DemoResult, error)

// Run calls f.
func (f DemoFunc) Run(ctx context.Context) (model.DemoResult, error) {
	return f(ctx)
}

type service struct {
	demos          []Demo
	outputService  output.Service
	storageService storage.Service
	versionInfo    model.VersionInfo
	newRunUUID     func() string
	now            func() time.Time
}

// Service is the interface for orchestrator service.
type Service interface {
	Orchestrate(ctx context.Context, flags model.Flags) (model.RunReport, error)
}
