// Package output provides a service for rendering run reports to the console.
package output

import (
	"os"

	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/shared/log"
)

// NewService creates a new output service with the specified format.
// outputFile is only used by the HTML format.
func NewService(format, outputFile string) Service {
	f := FormatTable
	switch Format(format) {
	case FormatJSON, FormatHTML:
		f = Format(format)
	}

	return &service{
		format:     f,
		outputFile: outputFile,
		renderer:   &realRenderer{w: os.Stdout},
	}
}

func (s *service) Format() Format {
	return s.format
}

// Progress shows msg on the spinner, starting it on first use. JSON output
// keeps stdout clean and shows no spinner.
func (s *service) Progress(msg string) {
	if s.format == FormatJSON {
		return
	}
	if s.spinning {
		s.renderer.UpdateSpinner(msg)
		return
	}
	s.renderer.StartSpinner(msg)
	s.spinning = true
}

func (s *service) RenderReport(report model.RunReport) error {
	s.StopSpinner()

	switch s.format {
	case FormatJSON:
		return s.renderer.OutputRunJSON(report)
	case FormatHTML:
		path, err := s.renderer.OutputRunHTML(report, s.outputFile)
		if err != nil {
			return err
		}
		log.InfoMsg("HTML report written to %s", path)
		return nil
	}

	s.renderer.DrawHeader(report)
	for _, d := range report.Demos {
		s.renderer.DrawDemo(d)
	}
	s.renderer.DrawFooter(report)
	return nil
}

func (s *service) StopSpinner() {
	if s.spinning {
		s.renderer.StopSpinner()
		s.spinning = false
	}
}
