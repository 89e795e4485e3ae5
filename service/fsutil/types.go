package fsutil

import (
	"context"
	"time"

	"github.com/thirukguru/mylib-demo/model"
)

type service struct {
	fsCfg   model.FilesystemConfig
	dtCfg   model.DateTimeConfig
	workDir string
	now     func() time.Time
}

// Listing is the result of reading a directory.
type Listing struct {
	Dir   string
	Names []string
	Total int
}

// FileInfo is the metadata reported for the inspected file.
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// TimeReport holds the date/time arithmetic results.
type TimeReport struct {
	Now      time.Time
	Later    time.Time
	Today    time.Time
	NextWeek time.Time
	Duration time.Duration
	AddHours int
	AddDays  int
}

// Service is the interface for the filesystem and date/time demos.
type Service interface {
	List(dir string, limit int) (Listing, error)
	EnsureDir(path string) (created bool, err error)
	Inspect(path string) (FileInfo, bool, error)
	Times() (TimeReport, error)
	RunFilesystem(ctx context.Context) (model.DemoResult, error)
	RunDateTime(ctx context.Context) (model.DemoResult, error)
}
