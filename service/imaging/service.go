// Package imaging implements the image-processing demo: draw on a canvas,
// save it, then detect edges and save the edge map.
package imaging

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/shared/filter"
	"github.com/thirukguru/mylib-demo/shared/steps"
)

const (
	// Name identifies the demo in reports and build tags.
	Name = "imaging"
	// Title is the human-readable demo name.
	Title = "Imaging"
)

// NewService creates an imaging demo writing its files under workDir.
func NewService(cfg model.ImagingConfig, workDir string) Service {
	return &service{cfg: cfg, workDir: workDir, save: imaging.Save}
}

func (s *service) Canvas() *image.NRGBA {
	img := s.newCanvas()
	s.drawShape(img)
	s.drawCaption(img)
	return img
}

func (s *service) DetectEdges(img image.Image) *filter.EdgeMap {
	return s.canny(s.blur(s.grayscale(img)))
}

func (s *service) newCanvas() *image.NRGBA {
	return imaging.New(s.cfg.Width, s.cfg.Height, colorWhite)
}

func (s *service) drawShape(img *image.NRGBA) {
	drawRectangle(img, pt(s.cfg.RectMin), pt(s.cfg.RectMax), s.cfg.Thickness, colorRed)
}

func (s *service) drawCaption(img *image.NRGBA) {
	drawText(img, pt(s.cfg.TextOrigin), s.cfg.TextScale, s.cfg.Text, colorBlack)
}

func (s *service) grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

func (s *service) blur(img image.Image) *image.NRGBA {
	return imaging.Blur(img, s.cfg.BlurSigma)
}

func (s *service) canny(img image.Image) *filter.EdgeMap {
	return filter.Canny(filter.FromImage(img), s.cfg.CannyLow, s.cfg.CannyHigh, filter.NormL1)
}

func (s *service) Run(ctx context.Context) (model.DemoResult, error) {
	result := model.DemoResult{Name: Name, Title: Title, Enabled: true, BuildTag: Name}
	rec := steps.NewRecorder()
	done := func(err error) (model.DemoResult, error) {
		result.Steps = rec.Steps()
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return done(err)
	}

	var canvas *image.NRGBA
	_ = rec.Do("create canvas", func() (steps.Outcome, error) {
		canvas = s.newCanvas()
		return steps.Outcome{Detail: fmt.Sprintf("%dx%d white canvas", s.cfg.Width, s.cfg.Height)}, nil
	})
	_ = rec.Do("draw rectangle", func() (steps.Outcome, error) {
		s.drawShape(canvas)
		return steps.Outcome{Detail: fmt.Sprintf("%v-%v red, thickness %d", pt(s.cfg.RectMin), pt(s.cfg.RectMax), s.cfg.Thickness)}, nil
	})
	_ = rec.Do("draw text", func() (steps.Outcome, error) {
		s.drawCaption(canvas)
		return steps.Outcome{Detail: fmt.Sprintf("%q at %v", s.cfg.Text, pt(s.cfg.TextOrigin))}, nil
	})

	examplePath := s.path(s.cfg.ExamplePath)
	if err := rec.Do("save image", func() (steps.Outcome, error) {
		if err := s.save(canvas, examplePath, imaging.JPEGQuality(s.cfg.JPEGQuality)); err != nil {
			return steps.Outcome{}, fmt.Errorf("failed to save %s: %w", examplePath, err)
		}
		return steps.Outcome{Detail: "Image saved to " + examplePath, Artifact: examplePath}, nil
	}); err != nil {
		return done(err)
	}

	var gray, blurred *image.NRGBA
	_ = rec.Do("grayscale", func() (steps.Outcome, error) {
		gray = s.grayscale(canvas)
		return steps.Outcome{Detail: "converted to luminance"}, nil
	})
	_ = rec.Do("gaussian blur", func() (steps.Outcome, error) {
		blurred = s.blur(gray)
		return steps.Outcome{Detail: fmt.Sprintf("sigma %.2f", s.cfg.BlurSigma)}, nil
	})

	var edges *filter.EdgeMap
	_ = rec.Do("canny", func() (steps.Outcome, error) {
		edges = s.canny(blurred)
		return steps.Outcome{Detail: fmt.Sprintf("%d edge pixels (low %.0f, high %.0f)", edges.Count(), s.cfg.CannyLow, s.cfg.CannyHigh)}, nil
	})

	edgesPath := s.path(s.cfg.EdgesPath)
	if err := rec.Do("save edges", func() (steps.Outcome, error) {
		if err := s.save(edges.Image(), edgesPath, imaging.JPEGQuality(s.cfg.JPEGQuality)); err != nil {
			return steps.Outcome{}, fmt.Errorf("failed to save %s: %w", edgesPath, err)
		}
		return steps.Outcome{Detail: "Edge detection result saved to " + edgesPath, Artifact: edgesPath}, nil
	}); err != nil {
		return done(err)
	}

	return done(nil)
}

func (s *service) path(p string) string {
	if filepath.IsAbs(p) || s.workDir == "" {
		return p
	}
	return filepath.Join(s.workDir, p)
}

func pt(v [2]int) image.Point {
	return image.Pt(v[0], v[1])
}
