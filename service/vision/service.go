// Package vision implements a small machine-vision toolkit modeled on
// HALCON operators, and the demo that exercises it.
//
// Operators report failures as *Error. The demo records such errors as a
// failed step and carries on; any other error aborts the run.
package vision

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/shared/steps"
)

const (
	// Name identifies the demo in reports and build tags.
	Name = "vision"
	// Title is the human-readable demo name.
	Title = "Vision"
)

// NewService creates a vision demo resolving relative paths against workDir.
func NewService(cfg model.VisionConfig, workDir string) Service {
	return &service{cfg: cfg, workDir: workDir}
}

func (s *service) Run(ctx context.Context) (model.DemoResult, error) {
	result := model.DemoResult{Name: Name, Title: Title, Enabled: true, BuildTag: Name}
	rec := steps.NewRecorder()
	done := func(err error) (model.DemoResult, error) {
		result.Steps = rec.Steps()
		var verr *Error
		if errors.As(err, &verr) {
			return result, nil
		}
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return done(err)
	}

	var img *Image
	if err := rec.Do("gen image const", func() (steps.Outcome, error) {
		var err error
		img, err = GenImageConst("byte", s.cfg.Width, s.cfg.Height)
		if err != nil {
			return steps.Outcome{}, err
		}
		return steps.Outcome{Detail: fmt.Sprintf("%dx%d byte image", img.Width, img.Height)}, nil
	}); err != nil {
		return done(err)
	}

	if err := rec.Do("gen rectangle1", func() (steps.Outcome, error) {
		r := s.cfg.Rect
		rect, err := GenRectangle1(r[0], r[1], r[2], r[3])
		if err != nil {
			return steps.Outcome{}, err
		}
		return steps.Outcome{Detail: fmt.Sprintf("rectangle %v, area %d", r, rect.Area())}, nil
	}); err != nil {
		return done(err)
	}

	var filtered *Image
	if err := rec.Do("median image", func() (steps.Outcome, error) {
		var err error
		filtered, err = img.MedianImage("circle", s.cfg.MedianRadius, "mirrored")
		if err != nil {
			return steps.Outcome{}, err
		}
		return steps.Outcome{Detail: fmt.Sprintf("circle mask, radius %d, mirrored", s.cfg.MedianRadius)}, nil
	}); err != nil {
		return done(err)
	}

	if err := rec.Do("edges sub pix", func() (steps.Outcome, error) {
		contours, err := filtered.EdgesSubPix("canny", s.cfg.EdgeAlpha, s.cfg.EdgeLow, s.cfg.EdgeHigh)
		if err != nil {
			return steps.Outcome{}, err
		}
		return steps.Outcome{Detail: fmt.Sprintf("canny alpha %.1f, %d contours", s.cfg.EdgeAlpha, len(contours))}, nil
	}); err != nil {
		return done(err)
	}

	_ = rec.Do("summary", func() (steps.Outcome, error) {
		return steps.Outcome{Detail: "Vision operations completed successfully"}, nil
	})

	if !s.cfg.FullPipeline {
		rec.Skip("full pipeline", "disabled (set vision.full_pipeline or --vision-pipeline)")
		return done(nil)
	}
	if err := ctx.Err(); err != nil {
		return done(err)
	}

	if err := rec.Do("full pipeline", func() (steps.Outcome, error) {
		res, err := s.Pipeline(s.path(s.cfg.InputPath), s.path(s.cfg.ResultPath))
		if err != nil {
			return steps.Outcome{}, err
		}
		return steps.Outcome{Detail: fmt.Sprintf("Found %d objects", len(res.Objects)), Artifact: res.Output}, nil
	}); err != nil {
		return done(err)
	}

	return done(nil)
}

// Pipeline reads input, segments bright objects and writes the gray image
// to output.
func (s *service) Pipeline(input, output string) (PipelineResult, error) {
	src, err := ReadImage(input)
	if err != nil {
		return PipelineResult{}, err
	}
	gray, err := src.Rgb1ToGray()
	if err != nil {
		return PipelineResult{}, err
	}
	region, err := gray.Threshold(s.cfg.ThresholdMin, s.cfg.ThresholdMax)
	if err != nil {
		return PipelineResult{}, err
	}
	opened, err := region.OpeningCircle(s.cfg.MorphRadius)
	if err != nil {
		return PipelineResult{}, err
	}
	closed, err := opened.ClosingCircle(s.cfg.MorphRadius)
	if err != nil {
		return PipelineResult{}, err
	}
	areas, rows, cols := AreaCenter(closed.Connection())
	written, err := gray.WriteImage("png", 0, output)
	if err != nil {
		return PipelineResult{}, err
	}
	return PipelineResult{Objects: areas, Rows: rows, Cols: cols, Output: written}, nil
}

func (s *service) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.workDir, p)
}
