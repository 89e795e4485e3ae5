// Package fsutil implements the filesystem and date/time demos.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/shared/steps"
)

const (
	// Name identifies the demo in reports and build tags.
	Name = "fsutil"
	// FilesystemTitle is the title of the filesystem demo.
	FilesystemTitle = "Filesystem"
	// DateTimeTitle is the title of the date/time demo.
	DateTimeTitle = "DateTime"

	// TimeLayout formats timestamps as 2026-Oct-19 14:03:22.
	TimeLayout = "2006-Jan-02 15:04:05"
	// DateLayout formats dates as 2026-Oct-19.
	DateLayout = "2006-Jan-02"
)

// NewService creates a filesystem/date-time demo rooted at workDir.
func NewService(fsCfg model.FilesystemConfig, dtCfg model.DateTimeConfig, workDir string) Service {
	return &service{fsCfg: fsCfg, dtCfg: dtCfg, workDir: workDir, now: time.Now}
}

// List returns the first limit entry names of dir in name order together
// with the total number of entries.
func (s *service) List(dir string, limit int) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	out := Listing{Dir: dir, Total: len(entries)}
	for i, e := range entries {
		if limit > 0 && i >= limit {
			break
		}
		name := e.Name()
		if e.IsDir() {
			name += string(filepath.Separator)
		}
		out.Names = append(out.Names, name)
	}
	return out, nil
}

// EnsureDir creates path if it does not exist yet.
func (s *service) EnsureDir(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", path)
		}
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(path, 0o755); err != nil {
			return false, fmt.Errorf("failed to create %s: %w", path, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// Inspect returns metadata for path. The boolean is false when the file
// does not exist.
func (s *service) Inspect(path string) (FileInfo, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return FileInfo{}, false, nil
	}
	if err != nil {
		return FileInfo{}, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return FileInfo{Path: path, Size: info.Size(), ModTime: info.ModTime()}, true, nil
}

// Times performs the date/time arithmetic of the demo.
func (s *service) Times() (TimeReport, error) {
	d, err := time.ParseDuration(s.dtCfg.Duration)
	if err != nil {
		return TimeReport{}, fmt.Errorf("invalid duration %q: %w", s.dtCfg.Duration, err)
	}
	now := s.now().Local().Truncate(time.Second)
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())

	return TimeReport{
		Now:      now,
		Later:    now.Add(time.Duration(s.dtCfg.AddHours) * time.Hour),
		Today:    today,
		NextWeek: today.AddDate(0, 0, s.dtCfg.AddDays),
		Duration: d,
		AddHours: s.dtCfg.AddHours,
		AddDays:  s.dtCfg.AddDays,
	}, nil
}

func (s *service) RunFilesystem(ctx context.Context) (model.DemoResult, error) {
	result := model.DemoResult{Name: Name, Title: FilesystemTitle, Enabled: true, BuildTag: Name}
	rec := steps.NewRecorder()
	done := func(err error) (model.DemoResult, error) {
		result.Steps = rec.Steps()
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return done(err)
	}

	var dir string
	if err := rec.Do("current path", func() (steps.Outcome, error) {
		abs, err := filepath.Abs(s.workDir)
		if err != nil {
			return steps.Outcome{}, fmt.Errorf("failed to resolve %s: %w", s.workDir, err)
		}
		dir = abs
		return steps.Outcome{Detail: "Current path: " + dir}, nil
	}); err != nil {
		return done(err)
	}

	if err := rec.Do("list directory", func() (steps.Outcome, error) {
		listing, err := s.List(dir, s.fsCfg.ListLimit)
		if err != nil {
			return steps.Outcome{}, err
		}
		detail := fmt.Sprintf("%d entries, first %d: %s", listing.Total, len(listing.Names), strings.Join(listing.Names, ", "))
		return steps.Outcome{Detail: detail}, nil
	}); err != nil {
		return done(err)
	}

	outDir := filepath.Join(dir, s.fsCfg.OutputDir)
	if err := rec.Do("create directory", func() (steps.Outcome, error) {
		created, err := s.EnsureDir(outDir)
		if err != nil {
			return steps.Outcome{}, err
		}
		if created {
			return steps.Outcome{Detail: "Created directory: " + outDir, Artifact: outDir}, nil
		}
		return steps.Outcome{Detail: "Directory already exists: " + outDir, Artifact: outDir}, nil
	}); err != nil {
		return done(err)
	}

	target := s.fsCfg.InspectFile
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	info, found, err := s.Inspect(target)
	if err != nil {
		rec.Fail("file metadata", err.Error())
		return done(err)
	}
	if !found {
		rec.Skip("file metadata", s.fsCfg.InspectFile+" not found")
		return done(nil)
	}
	_ = rec.Do("file metadata", func() (steps.Outcome, error) {
		detail := fmt.Sprintf("%s size: %d bytes (%s), last modified: %s (%s)",
			s.fsCfg.InspectFile, info.Size, humanize.Bytes(uint64(info.Size)),
			info.ModTime.Format(time.ANSIC), humanize.RelTime(info.ModTime, s.now(), "ago", "from now"))
		return steps.Outcome{Detail: detail}, nil
	})

	return done(nil)
}

func (s *service) RunDateTime(ctx context.Context) (model.DemoResult, error) {
	result := model.DemoResult{Name: Name, Title: DateTimeTitle, Enabled: true, BuildTag: Name}
	rec := steps.NewRecorder()
	done := func(err error) (model.DemoResult, error) {
		result.Steps = rec.Steps()
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return done(err)
	}

	var report TimeReport
	if err := rec.Do("current time", func() (steps.Outcome, error) {
		var err error
		report, err = s.Times()
		if err != nil {
			return steps.Outcome{}, err
		}
		return steps.Outcome{Detail: "Current time: " + report.Now.Format(TimeLayout)}, nil
	}); err != nil {
		return done(err)
	}

	_ = rec.Do("add hours", func() (steps.Outcome, error) {
		return steps.Outcome{Detail: fmt.Sprintf("%d hours later: %s", report.AddHours, report.Later.Format(TimeLayout))}, nil
	})
	_ = rec.Do("today", func() (steps.Outcome, error) {
		return steps.Outcome{Detail: "Today: " + report.Today.Format(DateLayout)}, nil
	})
	_ = rec.Do("add days", func() (steps.Outcome, error) {
		return steps.Outcome{Detail: fmt.Sprintf("%d days later: %s", report.AddDays, report.NextWeek.Format(DateLayout))}, nil
	})
	_ = rec.Do("duration", func() (steps.Outcome, error) {
		return steps.Outcome{Detail: "Duration: " + FormatDuration(report.Duration)}, nil
	})

	return done(nil)
}

// FormatDuration renders d as HH:MM:SS, with a leading minus sign for
// negative durations and fractional seconds when present.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	d -= sec * time.Second

	out := fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	if d > 0 {
		out += strings.TrimRight(fmt.Sprintf(".%09d", d), "0")
	}
	return out
}
