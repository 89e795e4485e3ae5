package model

// RunReportJSON is the JSON document printed with --output json.
type RunReportJSON struct {
	RunUUID     string           `json:"run_uuid"`
	LibVersion  string           `json:"lib_version"`
	Version     string           `json:"version"`
	StartedAt   string           `json:"started_at"`
	GeneratedAt string           `json:"generated_at"`
	DurationMS  int64            `json:"duration_ms"`
	Summary     RunSummaryJSON   `json:"summary"`
	Demos       []DemoReportJSON `json:"demos"`
}

// RunSummaryJSON aggregates step outcomes across demos.
type RunSummaryJSON struct {
	EnabledDemos  int      `json:"enabled_demos"`
	DisabledDemos int      `json:"disabled_demos"`
	TotalSteps    int      `json:"total_steps"`
	FailedSteps   int      `json:"failed_steps"`
	SkippedSteps  int      `json:"skipped_steps"`
	Artifacts     []string `json:"artifacts"`
}

// DemoReportJSON is one demo in the JSON report.
type DemoReportJSON struct {
	Name     string           `json:"name"`
	Title    string           `json:"title"`
	Enabled  bool             `json:"enabled"`
	BuildTag string           `json:"build_tag"`
	Message  string           `json:"message,omitempty"`
	Steps    []StepReportJSON `json:"steps"`
}

// StepReportJSON is one step in the JSON report.
type StepReportJSON struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Detail     string  `json:"detail,omitempty"`
	Artifact   string  `json:"artifact,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}
