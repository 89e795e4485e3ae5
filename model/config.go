package model

// Config holds the parameters of every demo. Zero values are replaced by
// defaults when the file is loaded.
type Config struct {
	WorkDir    string           `yaml:"workdir"`
	Imaging    ImagingConfig    `yaml:"imaging"`
	Filesystem FilesystemConfig `yaml:"filesystem"`
	DateTime   DateTimeConfig   `yaml:"datetime"`
	Vision     VisionConfig     `yaml:"vision"`
}

// ImagingConfig configures the image-processing demo.
type ImagingConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	RectMin     [2]int  `yaml:"rect_min"`
	RectMax     [2]int  `yaml:"rect_max"`
	Thickness   int     `yaml:"thickness"`
	Text        string  `yaml:"text"`
	TextOrigin  [2]int  `yaml:"text_origin"`
	TextScale   int     `yaml:"text_scale"`
	BlurSigma   float64 `yaml:"blur_sigma"`
	CannyLow    float64 `yaml:"canny_low"`
	CannyHigh   float64 `yaml:"canny_high"`
	JPEGQuality int     `yaml:"jpeg_quality"`
	ExamplePath string  `yaml:"example_path"`
	EdgesPath   string  `yaml:"edges_path"`
}

// FilesystemConfig configures the filesystem demo.
type FilesystemConfig struct {
	ListLimit   int    `yaml:"list_limit"`
	OutputDir   string `yaml:"output_dir"`
	InspectFile string `yaml:"inspect_file"`
}

// DateTimeConfig configures the date/time demo.
type DateTimeConfig struct {
	AddHours int    `yaml:"add_hours"`
	AddDays  int    `yaml:"add_days"`
	Duration string `yaml:"duration"`
}

// VisionConfig configures the vision-toolkit demo.
type VisionConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Rect         [4]int  `yaml:"rect"`
	MedianRadius int     `yaml:"median_radius"`
	EdgeAlpha    float64 `yaml:"edge_alpha"`
	EdgeLow      float64 `yaml:"edge_low"`
	EdgeHigh     float64 `yaml:"edge_high"`
	FullPipeline bool    `yaml:"full_pipeline"`
	InputPath    string  `yaml:"input_path"`
	ThresholdMin float64 `yaml:"threshold_min"`
	ThresholdMax float64 `yaml:"threshold_max"`
	MorphRadius  float64 `yaml:"morph_radius"`
	ResultPath   string  `yaml:"result_path"`
}
