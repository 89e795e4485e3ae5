// Package config loads and validates the YAML configuration of the demos.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/thirukguru/mylib-demo/model"
	"gopkg.in/yaml.v3"
)

// NewService creates a new config service reading from the local filesystem.
func NewService() Service {
	return &service{readFile: os.ReadFile}
}

// Load reads the YAML file at path, applies defaults and validates the
// result. An empty path yields the defaults.
func (s *service) Load(path string) (model.Config, error) {
	var cfg model.Config

	if strings.TrimSpace(path) != "" {
		data, err := s.readFile(path)
		if err != nil {
			return model.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return model.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if errs := Validate(cfg); len(errs) > 0 {
		return model.Config{}, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() model.Config {
	var cfg model.Config
	ApplyDefaults(&cfg)
	return cfg
}

// ApplyDefaults fills every zero-valued field of cfg.
func ApplyDefaults(cfg *model.Config) {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}

	im := &cfg.Imaging
	setInt(&im.Width, 640)
	setInt(&im.Height, 480)
	if im.RectMin == [2]int{} && im.RectMax == [2]int{} {
		im.RectMin = [2]int{100, 100}
		im.RectMax = [2]int{300, 300}
	}
	setInt(&im.Thickness, 2)
	setString(&im.Text, "Hello Imaging!")
	if im.TextOrigin == [2]int{} {
		im.TextOrigin = [2]int{150, 200}
	}
	setInt(&im.TextScale, 2)
	setFloat(&im.BlurSigma, 1.1)
	setFloat(&im.CannyLow, 50)
	setFloat(&im.CannyHigh, 150)
	setInt(&im.JPEGQuality, 95)
	setString(&im.ExamplePath, "imaging_example.jpg")
	setString(&im.EdgesPath, "imaging_edges.jpg")

	fs := &cfg.Filesystem
	setInt(&fs.ListLimit, 10)
	setString(&fs.OutputDir, "test_output")
	setString(&fs.InspectFile, "go.mod")

	dt := &cfg.DateTime
	setInt(&dt.AddHours, 24)
	setInt(&dt.AddDays, 7)
	setString(&dt.Duration, "2h30m15s")

	v := &cfg.Vision
	setInt(&v.Width, 640)
	setInt(&v.Height, 480)
	if v.Rect == [4]int{} {
		v.Rect = [4]int{100, 100, 300, 300}
	}
	setInt(&v.MedianRadius, 5)
	setFloat(&v.EdgeAlpha, 1.0)
	setFloat(&v.EdgeLow, 20)
	setFloat(&v.EdgeHigh, 40)
	setString(&v.InputPath, "test_image.jpg")
	setFloat(&v.ThresholdMin, 128)
	setFloat(&v.ThresholdMax, 255)
	setFloat(&v.MorphRadius, 3.5)
	setString(&v.ResultPath, "vision_result.png")
}

// Validate returns every problem found in cfg.
func Validate(cfg model.Config) []error {
	var errs []error

	im := cfg.Imaging
	if im.Width <= 0 || im.Height <= 0 {
		errs = append(errs, fmt.Errorf("imaging: canvas size %dx%d must be positive", im.Width, im.Height))
	}
	if im.RectMin[0] > im.RectMax[0] || im.RectMin[1] > im.RectMax[1] {
		errs = append(errs, fmt.Errorf("imaging: rect_min %v must not exceed rect_max %v", im.RectMin, im.RectMax))
	}
	if im.Thickness < 1 {
		errs = append(errs, fmt.Errorf("imaging: thickness must be >= 1"))
	}
	if im.TextScale < 1 {
		errs = append(errs, fmt.Errorf("imaging: text_scale must be >= 1"))
	}
	if im.BlurSigma < 0 {
		errs = append(errs, fmt.Errorf("imaging: blur_sigma must not be negative"))
	}
	if im.CannyLow > im.CannyHigh {
		errs = append(errs, fmt.Errorf("imaging: canny_low %.1f exceeds canny_high %.1f", im.CannyLow, im.CannyHigh))
	}
	if im.JPEGQuality < 1 || im.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("imaging: jpeg_quality must be in [1, 100]"))
	}

	if cfg.Filesystem.ListLimit < 1 {
		errs = append(errs, fmt.Errorf("filesystem: list_limit must be >= 1"))
	}

	if _, err := time.ParseDuration(cfg.DateTime.Duration); err != nil {
		errs = append(errs, fmt.Errorf("datetime: duration %q: %w", cfg.DateTime.Duration, err))
	}

	v := cfg.Vision
	if v.Width <= 0 || v.Height <= 0 {
		errs = append(errs, fmt.Errorf("vision: image size %dx%d must be positive", v.Width, v.Height))
	}
	if v.MedianRadius <= 0 {
		errs = append(errs, fmt.Errorf("vision: median_radius must be positive"))
	}
	if v.EdgeAlpha <= 0 {
		errs = append(errs, fmt.Errorf("vision: edge_alpha must be positive"))
	}
	if v.EdgeLow > v.EdgeHigh {
		errs = append(errs, fmt.Errorf("vision: edge_low %.1f exceeds edge_high %.1f", v.EdgeLow, v.EdgeHigh))
	}
	if v.ThresholdMin > v.ThresholdMax {
		errs = append(errs, fmt.Errorf("vision: threshold_min %.1f exceeds threshold_max %.1f", v.ThresholdMin, v.ThresholdMax))
	}
	if v.MorphRadius <= 0 {
		errs = append(errs, fmt.Errorf("vision: morph_radius must be positive"))
	}

	return errs
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if strings.TrimSpace(*v) == "" {
		*v = def
	}
}
