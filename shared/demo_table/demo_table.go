// Package demotable renders demo results as console tables.
package demotable

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/mylib-demo/model"
	jsonoutput "github.com/thirukguru/mylib-demo/shared/json_output"
)

// CompletedMessage is printed once every demo has run.
const CompletedMessage = "All examples completed"

// DrawHeader prints the run identification lines.
func DrawHeader(w io.Writer, report model.RunReport) {
	fmt.Fprintln(w, text.Bold.Sprint("External Libraries Usage Examples"))
	fmt.Fprintf(w, "mylib version: %s\n", report.LibVersion)
	fmt.Fprintf(w, "run: %s\n", text.Faint.Sprint(report.RunUUID))
}

// DrawDemo prints the steps of an enabled demo, or the not-enabled line
// for a demo that was compiled out.
func DrawDemo(w io.Writer, demo model.DemoResult) {
	if !demo.Enabled {
		fmt.Fprintf(w, "\n%s\n", text.FgHiBlack.Sprint(jsonoutput.NotEnabledMessage(demo)))
		return
	}

	fmt.Fprintf(w, "\n%s Example\n", demo.Title)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(demo.Title)
	t.AppendHeader(table.Row{"#", "Step", "Status", "Detail", "Artifact", "Time"})
	for i, s := range demo.Steps {
		t.AppendRow(table.Row{i + 1, s.Name, colorStatus(s.Status), s.Detail, s.Artifact, formatDuration(s.Duration)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: 70},
		{Number: 6, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawFooter prints the step summary and the completion line.
func DrawFooter(w io.Writer, report model.RunReport) {
	total, failed := report.StepCounts()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   %s ", text.FgGreen.Sprintf("%d OK", total-failed-skipped(report)))
	if failed > 0 {
		fmt.Fprintf(w, "%s ", text.FgRed.Sprintf("%d Failed", failed))
	}
	if n := skipped(report); n > 0 {
		fmt.Fprintf(w, "%s ", text.FgYellow.Sprintf("%d Skipped", n))
	}
	fmt.Fprintf(w, "in %s\n", formatDuration(report.Duration))
	fmt.Fprintf(w, "\n%s\n", CompletedMessage)
}

func skipped(report model.RunReport) int {
	n := 0
	for _, d := range report.Demos {
		for _, s := range d.Steps {
			if s.Status == model.StepSkipped {
				n++
			}
		}
	}
	return n
}

func colorStatus(s model.StepStatus) string {
	switch s {
	case model.StepOK:
		return text.FgGreen.Sprint(s)
	case model.StepFailed:
		return text.FgRed.Sprint(s)
	default:
		return text.FgYellow.Sprint(s)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(100 * time.Microsecond).String()
	}
}
