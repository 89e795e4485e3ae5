package imaging

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/shared/filter"
)

type saveFunc func(img image.Image, path string, opts ...imaging.EncodeOption) error

type service struct {
	cfg     model.ImagingConfig
	workDir string
	save    saveFunc
}

// Service is the interface for the image-processing demo.
type Service interface {
	// Canvas builds the annotated example image.
	Canvas() *image.NRGBA
	// DetectEdges runs grayscale conversion, Gaussian blur and Canny.
	DetectEdges(img image.Image) *filter.EdgeMap
	// Run executes the whole demo and writes both images.
	Run(ctx context.Context) (model.DemoResult, error)
}
