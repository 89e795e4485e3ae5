package storage

import (
	"context"
	"time"
)

// Service defines persistence and history query operations.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetTrends(days int) ([]TrendPoint, error)
	GetRecentRuns(limit int) ([]RunSummary, error)
	GetRun(runUUID string) (*RunSummary, error)
	GetRunComparison(runID1, runID2 int64) (*RunComparison, error)
	GetStepLifecycle(demo, step string) ([]StepLifecycleEvent, error)
	ListSteps(runID int64) ([]StepSnapshot, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveRunInput is the payload saved for a completed demo run.
type SaveRunInput struct {
	RunUUID    string
	StartedAt  time.Time
	DurationMS int64
	LibVersion string
	Version    string
	FlagsJSON  string
	Demos      []Demo
}

// Demo is one demo of a run with its ordered steps.
type Demo struct {
	Name     string
	Title    string
	Enabled  bool
	BuildTag string
	Steps    []Step
}

// Step is a normalized step result.
type Step struct {
	Name       string
	Status     string
	Detail     string
	Artifact   string
	DurationMS int64
}

// TrendPoint is a daily aggregate of runs.
type TrendPoint struct {
	Date        string  `json:"date"`
	Runs        int     `json:"runs"`
	TotalSteps  int     `json:"total_steps"`
	FailedSteps int     `json:"failed_steps"`
	AvgMS       float64 `json:"avg_duration_ms"`
	SuccessRate int     `json:"success_rate"`
}

// RunSummary provides compact run metadata.
type RunSummary struct {
	RunID        int64
	RunUUID      string
	RunTimestamp time.Time
	DurationMS   int64
	LibVersion   string
	Version      string
	EnabledDemos int
	TotalSteps   int
	FailedSteps  int
}

// RunComparison holds step status changes between two runs.
type RunComparison struct {
	RunID1        int64
	RunID2        int64
	NewlyFailed   int
	Recovered     int
	Unchanged     int
	FailedKeys    []string
	RecoveredKeys []string
}

// StepLifecycleEvent is the status of one step in a given run.
type StepLifecycleEvent struct {
	RunID        int64
	RunTimestamp time.Time
	Status       string
	Detail       string
	DurationMS   int64
}

// StepSnapshot is a run-time step view.
type StepSnapshot struct {
	Demo       string
	Seq        int
	Name       string
	Status     string
	Detail     string
	Artifact   string
	DurationMS int64
}
