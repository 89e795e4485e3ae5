package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/storage"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	configPath := pflag.String("config-path", "", "Path to a YAML file with demo parameters")
	workDir := pflag.StringP("workdir", "w", "", "Directory the demos read from and write to (overrides config)")
	output := pflag.StringP("output", "o", "table", "Output format (table, json or html)")
	outputFile := pflag.String("output-file", "", "HTML report path (default reports/mylib-demo-report_<time>.html)")
	store := pflag.Bool("store", false, "Persist the run report in the local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default "+storage.DefaultDBPath()+")")
	visionPipeline := pflag.Bool("vision-pipeline", false, "Run the full vision pipeline on the configured input image")
	noBanner := pflag.Bool("no-banner", false, "Do not print the title banner")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Parse()

	format := strings.ToLower(strings.TrimSpace(*output))
	switch format {
	case "table", "json", "html":
	default:
		return model.Flags{}, fmt.Errorf("unsupported output format %q (want table, json or html)", *output)
	}

	flags := model.Flags{
		ConfigPath:     *configPath,
		WorkDir:        *workDir,
		Output:         format,
		OutputFile:     *outputFile,
		Store:          *store,
		DBPath:         *dbPath,
		VisionPipeline: *visionPipeline,
		NoBanner:       *noBanner,
		Version:        *version,
	}

	return flags, nil
}
