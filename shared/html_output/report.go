// Package htmloutput renders run reports as a standalone HTML page.
package htmloutput

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/thirukguru/mylib-demo/model"
	jsonoutput "github.com/thirukguru/mylib-demo/shared/json_output"
)

// ReportData contains all data needed for HTML report generation
type ReportData struct {
	RunUUID     string
	LibVersion  string
	Version     string
	GeneratedAt string
	Duration    string
	Sections    []Section
	Summary     Summary
}

// Summary contains step statistics of the run
type Summary struct {
	TotalSteps   int
	OKCount      int
	FailedCount  int
	SkippedCount int
	SuccessRate  int
}

// Section is one demo of the run
type Section struct {
	ID      string
	Title   string
	Message string
	Steps   []Step
	Status  string // "failed", "good" or "disabled"
}

// Step is one row of a section
type Step struct {
	Status   string
	Name     string
	Detail   string
	Artifact string
	Duration string
}

// BuildReportData converts a run report into template data.
func BuildReportData(report model.RunReport) ReportData {
	data := ReportData{
		RunUUID:    report.RunUUID,
		LibVersion: report.LibVersion,
		Version:    report.Version,
		Duration:   report.Duration.Round(time.Millisecond).String(),
		Sections:   make([]Section, 0, len(report.Demos)),
	}

	for _, d := range report.Demos {
		section := Section{
			ID:     strings.ToLower(d.Title),
			Title:  d.Title,
			Status: "good",
		}
		switch {
		case !d.Enabled:
			section.Status = "disabled"
			section.Message = jsonoutput.NotEnabledMessage(d)
		case d.Failed():
			section.Status = "failed"
		}
		for _, s := range d.Steps {
			section.Steps = append(section.Steps, Step{
				Status:   string(s.Status),
				Name:     s.Name,
				Detail:   s.Detail,
				Artifact: s.Artifact,
				Duration: s.Duration.Round(time.Microsecond).String(),
			})
			data.Summary.TotalSteps++
			switch s.Status {
			case model.StepOK:
				data.Summary.OKCount++
			case model.StepFailed:
				data.Summary.FailedCount++
			case model.StepSkipped:
				data.Summary.SkippedCount++
			}
		}
		data.Sections = append(data.Sections, section)
	}

	if ran := data.Summary.OKCount + data.Summary.FailedCount; ran > 0 {
		data.Summary.SuccessRate = data.Summary.OKCount * 100 / ran
	} else {
		data.Summary.SuccessRate = 100
	}
	return data
}

// GenerateHTMLReport generates a complete HTML report from the provided data
func GenerateHTMLReport(data ReportData) (string, error) {
	if data.GeneratedAt == "" {
		data.GeneratedAt = time.Now().Format("2006-01-02 15:04:05 MST")
	}

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
