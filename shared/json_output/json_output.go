// Package jsonoutput renders run reports as JSON.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/thirukguru/mylib-demo/model"
)

// NotEnabledMessage is the line shown for a demo that was not compiled in.
func NotEnabledMessage(d model.DemoResult) string {
	return fmt.Sprintf("%s: Not enabled (build with -tags %s to enable)", d.Title, d.BuildTag)
}

// OutputRunJSON writes the run report to w as indented JSON.
func OutputRunJSON(w io.Writer, report model.RunReport) error {
	return printJSON(w, BuildRunReport(report, time.Now().UTC().Format(time.RFC3339)))
}

// BuildRunReport builds the JSON report model.
func BuildRunReport(report model.RunReport, generatedAt string) model.RunReportJSON {
	out := model.RunReportJSON{
		RunUUID:     report.RunUUID,
		LibVersion:  report.LibVersion,
		Version:     report.Version,
		StartedAt:   report.StartedAt.UTC().Format(time.RFC3339),
		GeneratedAt: generatedAt,
		DurationMS:  report.Duration.Milliseconds(),
		Summary:     model.RunSummaryJSON{Artifacts: []string{}},
		Demos:       make([]model.DemoReportJSON, 0, len(report.Demos)),
	}

	for _, d := range report.Demos {
		demo := model.DemoReportJSON{
			Name:     d.Name,
			Title:    d.Title,
			Enabled:  d.Enabled,
			BuildTag: d.BuildTag,
			Steps:    make([]model.StepReportJSON, 0, len(d.Steps)),
		}
		if d.Enabled {
			out.Summary.EnabledDemos++
		} else {
			out.Summary.DisabledDemos++
			demo.Message = NotEnabledMessage(d)
		}
		for _, s := range d.Steps {
			out.Summary.TotalSteps++
			switch s.Status {
			case model.StepFailed:
				out.Summary.FailedSteps++
			case model.StepSkipped:
				out.Summary.SkippedSteps++
			}
			if s.Artifact != "" {
				out.Summary.Artifacts = append(out.Summary.Artifacts, s.Artifact)
			}
			demo.Steps = append(demo.Steps, model.StepReportJSON{
				Name:       s.Name,
				Status:     string(s.Status),
				Detail:     s.Detail,
				Artifact:   s.Artifact,
				DurationMS: float64(s.Duration.Microseconds()) / 1000,
			})
		}
		out.Demos = append(out.Demos, demo)
	}

	return out
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
