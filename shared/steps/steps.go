// Package steps records the outcome and timing of demo steps.
package steps

import (
	"errors"
	"time"

	"github.com/thirukguru/mylib-demo/model"
)

// Recorder accumulates step results in call order.
type Recorder struct {
	now   func() time.Time
	steps []model.StepResult
}

// NewRecorder creates a recorder using the wall clock.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Outcome is what a step reports back on success.
type Outcome struct {
	Detail   string
	Artifact string
}

// Do runs fn and records its outcome. The error from fn is returned as is.
func (r *Recorder) Do(name string, fn func() (Outcome, error)) error {
	start := r.now()
	out, err := fn()
	res := model.StepResult{
		Name:     name,
		Detail:   out.Detail,
		Artifact: out.Artifact,
		Status:   model.StepOK,
		Duration: r.now().Sub(start),
	}
	if err != nil {
		res.Status = model.StepFailed
		res.Detail = detail(err)
	}
	r.steps = append(r.steps, res)
	return err
}

// Detailer is implemented by errors that describe themselves differently
// in a step report than in Error().
type Detailer interface {
	StepDetail() string
}

func detail(err error) string {
	var d Detailer
	if errors.As(err, &d) {
		return d.StepDetail()
	}
	return err.Error()
}

// Fail records a failed step without running anything.
func (r *Recorder) Fail(name, detail string) {
	r.steps = append(r.steps, model.StepResult{Name: name, Detail: detail, Status: model.StepFailed})
}

// Skip records a step that was not executed.
func (r *Recorder) Skip(name, detail string) {
	r.steps = append(r.steps, model.StepResult{Name: name, Detail: detail, Status: model.StepSkipped})
}

// Steps returns the recorded steps.
func (r *Recorder) Steps() []model.StepResult {
	return r.steps
}
