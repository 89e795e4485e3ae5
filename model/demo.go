package model

import "time"

// StepStatus is the outcome of a single demo step.
type StepStatus string

const (
	StepOK      StepStatus = "OK"
	StepFailed  StepStatus = "FAILED"
	StepSkipped StepStatus = "SKIPPED"
)

// StepResult describes one call made by a demo.
type StepResult struct {
	Name     string        `json:"name"`
	Detail   string        `json:"detail,omitempty"`
	Artifact string        `json:"artifact,omitempty"`
	Status   StepStatus    `json:"status"`
	Duration time.Duration `json:"duration_ns"`
}

// DemoResult groups the steps of one demo branch.
type DemoResult struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Enabled  bool         `json:"enabled"`
	BuildTag string       `json:"build_tag"`
	Steps    []StepResult `json:"steps,omitempty"`
}

// Failed reports whether any step of the demo failed.
func (d DemoResult) Failed() bool {
	for _, s := range d.Steps {
		if s.Status == StepFailed {
			return true
		}
	}
	return false
}

// RunReport is the result of one invocation of the demo program.
type RunReport struct {
	RunUUID    string        `json:"run_uuid"`
	LibVersion string        `json:"lib_version"`
	Version    string        `json:"version"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`
	Demos      []DemoResult  `json:"demos"`
}

// StepCounts returns the total number of steps and how many failed.
func (r RunReport) StepCounts() (total, failed int) {
	for _, d := range r.Demos {
		for _, s := range d.Steps {
			total++
			if s.Status == StepFailed {
				failed++
			}
		}
	}
	return total, failed
}
