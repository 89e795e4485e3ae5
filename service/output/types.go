package output

import (
	"io"

	"github.com/thirukguru/mylib-demo/model"
	demotable "github.com/thirukguru/mylib-demo/shared/demo_table"
	htmloutput "github.com/thirukguru/mylib-demo/shared/html_output"
	jsonoutput "github.com/thirukguru/mylib-demo/shared/json_output"
	"github.com/thirukguru/mylib-demo/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
)

// Renderer defines the interface for drawing reports
type Renderer interface {
	DrawHeader(report model.RunReport)
	DrawDemo(demo model.DemoResult)
	DrawFooter(report model.RunReport)
	OutputRunJSON(report model.RunReport) error
	OutputRunHTML(report model.RunReport, path string) (string, error)
	StartSpinner(msg string)
	UpdateSpinner(msg string)
	StopSpinner()
}

type realRenderer struct {
	w io.Writer
}

func (r *realRenderer) DrawHeader(report model.RunReport) {
	demotable.DrawHeader(r.w, report)
}

func (r *realRenderer) DrawDemo(demo model.DemoResult) {
	demotable.DrawDemo(r.w, demo)
}

func (r *realRenderer) DrawFooter(report model.RunReport) {
	demotable.DrawFooter(r.w, report)
}

func (r *realRenderer) OutputRunJSON(report model.RunReport) error {
	return jsonoutput.OutputRunJSON(r.w, report)
}

func (r *realRenderer) OutputRunHTML(report model.RunReport, path string) (string, error) {
	return htmloutput.WriteHTMLReport(path, report)
}

func (r *realRenderer) StartSpinner(msg string) {
	spinner.StartSpinner(msg)
}

func (r *realRenderer) UpdateSpinner(msg string) {
	spinner.UpdateSpinner(msg)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format     Format
	outputFile string
	renderer   Renderer
	spinning   bool
}

// Service defines the interface for output operations
type Service interface {
	Format() Format
	RenderReport(report model.RunReport) error
	Progress(msg string)
	StopSpinner()
}
