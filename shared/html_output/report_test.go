package htmloutput

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/mylib-demo/model"
)

func sampleReport() model.RunReport {
	return model.RunReport{
		RunUUID:    "run-1",
		LibVersion: "1.0.0",
		Version:    "dev",
		Duration:   1500 * time.Millisecond,
		Demos: []model.DemoResult{
			{Title: "Imaging", Enabled: true, BuildTag: "imaging", Steps: []model.StepResult{
				{Name: "create canvas", Status: model.StepOK},
				{Name: "save edges", Status: model.StepOK, Artifact: "imaging_edges.jpg"},
			}},
			{Title: "Vision", Enabled: true, BuildTag: "vision", Steps: []model.StepResult{
				{Name: "gen image const", Status: model.StepOK},
				{Name: "full pipeline", Status: model.StepFailed, Detail: "Vision Error: <missing>"},
				{Name: "summary", Status: model.StepSkipped},
			}},
			{Title: "DateTime", BuildTag: "fsutil"},
		},
	}
}

func TestBuildReportData(t *testing.T) {
	data := BuildReportData(sampleReport())

	assert.Equal(t, Summary{TotalSteps: 5, OKCount: 3, FailedCount: 1, SkippedCount: 1, SuccessRate: 75}, data.Summary)
	require.Len(t, data.Sections, 3)
	assert.Equal(t, "good", data.Sections[0].Status)
	assert.Equal(t, "failed", data.Sections[1].Status)
	assert.Equal(t, "disabled", data.Sections[2].Status)
	assert.Equal(t, "DateTime: Not enabled (build with -tags fsutil to enable)", data.Sections[2].Message)
	assert.Equal(t, "1.5s", data.Duration)
}

func TestGenerateHTMLReportEscapes(t *testing.T) {
	html, err := GenerateHTMLReport(BuildReportData(sampleReport()))
	require.NoError(t, err)

	assert.Contains(t, html, "<title>mylib-demo run run-1</title>")
	assert.Contains(t, html, `class="status-failed"`)
	assert.Contains(t, html, "Vision Error: &lt;missing&gt;")
	assert.NotContains(t, html, "<missing>")
}

func TestWriteHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.html")
	written, err := WriteHTMLReport(path, sampleReport())
	require.NoError(t, err)
	assert.Equal(t, path, written)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!DOCTYPE html>"))
}

func TestGenerateReportPath(t *testing.T) {
	at := time.Date(2026, time.October, 19, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, filepath.Join("reports", "mylib-demo-report_2026-10-19_08-30-00.html"), GenerateReportPath(at))
}
