// Package trends renders stored run history as tables.
package trends

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/mylib-demo/service/storage"
)

const tsLayout = "2006-01-02 15:04:05"

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// RenderTrendTable prints daily run aggregates.
func RenderTrendTable(w io.Writer, points []storage.TrendPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No runs recorded in this period")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Date", "Runs", "Steps", "Failed", "Avg Duration", "Success"})
	for _, p := range points {
		t.AppendRow(table.Row{p.Date, p.Runs, p.TotalSteps, p.FailedSteps, fmt.Sprintf("%.0fms", p.AvgMS), fmt.Sprintf("%d%%", p.SuccessRate)})
	}
	t.Render()
}

// RenderRunTable prints a list of runs, newest first.
func RenderRunTable(w io.Writer, runs []storage.RunSummary) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet (run with --store to record one)")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Run", "When", "Demos", "Steps", "Failed", "Duration", "Version"})
	for _, r := range runs {
		failed := fmt.Sprint(r.FailedSteps)
		if r.FailedSteps > 0 {
			failed = text.FgRed.Sprint(failed)
		}
		t.AppendRow(table.Row{
			r.RunID, shortUUID(r.RunUUID),
			fmt.Sprintf("%s (%s)", r.RunTimestamp.Local().Format(tsLayout), humanize.Time(r.RunTimestamp)),
			r.EnabledDemos, r.TotalSteps, failed, fmt.Sprintf("%dms", r.DurationMS), r.Version,
		})
	}
	t.Render()
}

// RenderStepTable prints the steps recorded for one run.
func RenderStepTable(w io.Writer, run *storage.RunSummary, steps []storage.StepSnapshot) {
	if run != nil {
		fmt.Fprintf(w, "\nRun %s (%s, mylib %s)\n", run.RunUUID, run.RunTimestamp.Local().Format(tsLayout), run.LibVersion)
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Demo", "#", "Step", "Status", "Detail", "Artifact"})
	for _, s := range steps {
		t.AppendRow(table.Row{s.Demo, s.Seq, s.Name, colorStatus(s.Status), s.Detail, s.Artifact})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 5, WidthMax: 60}})
	t.Render()
}

// RenderLifecycleTable prints the history of one step across runs.
func RenderLifecycleTable(w io.Writer, events []storage.StepLifecycleEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No history for this step")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Run ID", "When", "Status", "Duration", "Detail"})
	for _, e := range events {
		t.AppendRow(table.Row{e.RunID, e.RunTimestamp.Local().Format(tsLayout), colorStatus(e.Status), fmt.Sprintf("%dms", e.DurationMS), e.Detail})
	}
	t.Render()
}

// RenderComparisonTable prints step status changes between two runs.
func RenderComparisonTable(w io.Writer, cmp *storage.RunComparison) {
	if cmp == nil {
		fmt.Fprintln(w, "No comparison data available")
		return
	}
	fmt.Fprintf(w, "\nRun Comparison (%d -> %d)\n", cmp.RunID1, cmp.RunID2)
	t := newTable(w)
	t.AppendHeader(table.Row{"Newly Failed", "Recovered", "Unchanged"})
	t.AppendRow(table.Row{cmp.NewlyFailed, cmp.Recovered, cmp.Unchanged})
	t.Render()
	if len(cmp.FailedKeys) > 0 {
		fmt.Fprintf(w, "%s %s\n", text.FgRed.Sprint("failed:"), strings.Join(cmp.FailedKeys, ", "))
	}
	if len(cmp.RecoveredKeys) > 0 {
		fmt.Fprintf(w, "%s %s\n", text.FgGreen.Sprint("recovered:"), strings.Join(cmp.RecoveredKeys, ", "))
	}
}

func colorStatus(s string) string {
	switch s {
	case "OK":
		return text.FgGreen.Sprint(s)
	case "FAILED":
		return text.FgRed.Sprint(s)
	default:
		return text.FgYellow.Sprint(s)
	}
}

func shortUUID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
