package model

// Flags represents the command line flags.
type Flags struct {
	ConfigPath     string `json:"config_path,omitempty"`
	WorkDir        string `json:"workdir,omitempty"`
	Output         string `json:"output"`
	OutputFile     string `json:"output_file,omitempty"`
	Store          bool   `json:"store"`
	DBPath         string `json:"db_path,omitempty"`
	VisionPipeline bool   `json:"vision_pipeline"`
	NoBanner       bool   `json:"no_banner"`
	Version        bool   `json:"version"`
}
