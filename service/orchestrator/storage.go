package orchestrator

import (
	"context"
	"encoding/json"

	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/storage"
)

func toStorageDemos(demos []model.DemoResult) []storage.Demo {
	out := make([]storage.Demo, 0, len(demos))
	for _, d := range demos {
		sd := storage.Demo{Name: d.Name, Title: d.Title, Enabled: d.Enabled, BuildTag: d.BuildTag}
		for _, st := range d.Steps {
			sd.Steps = append(sd.Steps, storage.Step{
				Name:       st.Name,
				Status:     string(st.Status),
				Detail:     st.Detail,
				Artifact:   st.Artifact,
				DurationMS: st.Duration.Milliseconds(),
			})
		}
		out = append(out, sd)
	}
	return out
}

func (s *service) persistRunIfEnabled(ctx context.Context, flags model.Flags, report model.RunReport) error {
	if s.storageService == nil || !flags.Store {
		return nil
	}

	flagsJSON, _ := json.Marshal(flags)
	_, err := s.storageService.SaveRun(ctx, storage.SaveRunInput{
		RunUUID:    report.RunUUID,
		StartedAt:  report.StartedAt,
		DurationMS: report.Duration.Milliseconds(),
		LibVersion: report.LibVersion,
		Version:    report.Version,
		FlagsJSON:  string(flagsJSON),
		Demos:      toStorageDemos(report.Demos),
	})
	return err
}
