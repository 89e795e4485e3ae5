package htmloutput

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thirukguru/mylib-demo/model"
)

// DefaultReportDir is the default directory for HTML reports
const DefaultReportDir = "reports"

// GenerateReportPath returns a timestamped report path in the reports folder.
func GenerateReportPath(now time.Time) string {
	return filepath.Join(DefaultReportDir, fmt.Sprintf("mylib-demo-report_%s.html", now.Format("2006-01-02_15-04-05")))
}

// WriteHTMLReport renders report to outputPath and returns the path written.
// An empty outputPath writes a timestamped file under DefaultReportDir.
func WriteHTMLReport(outputPath string, report model.RunReport) (string, error) {
	html, err := GenerateHTMLReport(BuildReportData(report))
	if err != nil {
		return "", fmt.Errorf("failed to generate HTML report: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		outputPath = GenerateReportPath(time.Now())
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create reports directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}
	return outputPath, nil
}
