// Package orchestrator runs the compiled-in demos in order and reports on them.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/mylib"
	"github.com/thirukguru/mylib-demo/service/output"
	"github.com/thirukguru/mylib-demo/service/storage"
)

// NewService creates a new orchestrator service. storageService may be nil
// when history is not recorded.
func NewService(
	demos []Demo,
	outputService output.Service,
	storageService storage.Service,
	versionInfo model.VersionInfo,
) Service {
	return &service{
		demos:          demos,
		outputService:  outputService,
		storageService: storageService,
		versionInfo:    versionInfo,
		newRunUUID:     uuid.NewString,
		now:            time.Now,
	}
}

// Disabled returns a placeholder for a demo that was not compiled in.
func Disabled(name, title, buildTag string) Demo {
	return DemoFunc(func(context.Context) (model.DemoResult, error) {
		return model.DemoResult{Name: name, Title: title, BuildTag: buildTag}, nil
	})
}

func (s *service) Orchestrate(ctx context.Context, flags model.Flags) (model.RunReport, error) {
	if flags.Version {
		return model.RunReport{}, s.versionWorkflow()
	}
	return s.demoWorkflow(ctx, flags)
}

func (s *service) versionWorkflow() error {
	s.outputService.StopSpinner()

	fmt.Printf("mylib-demo version %s\n", s.versionInfo.Version)
	fmt.Printf("mylib version: %s\n", mylib.Version())
	fmt.Printf("commit: %s\n", s.versionInfo.Commit)
	fmt.Printf("built at: %s\n", s.versionInfo.Date)

	return nil
}

func (s *service) demoWorkflow(ctx context.Context, flags model.Flags) (model.RunReport, error) {
	startedAt := s.now()
	report := model.RunReport{
		RunUUID:    s.newRunUUID(),
		LibVersion: mylib.Version(),
		Version:    s.versionInfo.Version,
		StartedAt:  startedAt,
		Demos:      make([]model.DemoResult, 0, len(s.demos)),
	}

	var runErr error
	for i, d := range s.demos {
		s.outputService.Progress(fmt.Sprintf("Running demo %d/%d...", i+1, len(s.demos)))
		res, err := d.Run(ctx)
		report.Demos = append(report.Demos, res)
		if err != nil {
			name := res.Title
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			runErr = fmt.Errorf("%s demo failed: %w", name, err)
			break
		}
	}
	report.Duration = s.now().Sub(startedAt)

	if err := s.outputService.RenderReport(report); err != nil {
		return report, fmt.Errorf("failed to render report: %w", err)
	}
	// The report is saved even when an interrupt cancelled the demos.
	if err := s.persistRunIfEnabled(context.WithoutCancel(ctx), flags, report); err != nil {
		return report, errors.Join(runErr, fmt.Errorf("failed to save run history: %w", err))
	}
	return report, runErr
}
