package vision

import (
	"context"

	"github.com/thirukguru/mylib-demo/model"
)

type service struct {
	cfg     model.VisionConfig
	workDir string
}

// PipelineResult summarizes the full segmentation pipeline.
type PipelineResult struct {
	Objects []int
	Rows    []float64
	Cols    []float64
	Output  string
}

// Service is the interface for the vision demo.
type Service interface {
	Run(ctx context.Context) (model.DemoResult, error)
	Pipeline(input, output string) (PipelineResult, error)
}
