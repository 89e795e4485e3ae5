package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/mylib-demo/model"
)

func newTestService(t *testing.T, dir string) *service {
	t.Helper()
	s := NewService(
		model.FilesystemConfig{ListLimit: 3, OutputDir: "test_output", InspectFile: "go.mod"},
		model.DateTimeConfig{AddHours: 24, AddDays: 7, Duration: "2h30m15s"},
		dir,
	).(*service)
	s.now = func() time.Time { return time.Date(2024, time.January, 9, 22, 15, 30, 500, time.Local) }
	return s
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"e.txt", "a.txt", "c.txt", "b.txt", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	s := newTestService(t, dir)

	t.Run("truncates to limit", func(t *testing.T) {
		listing, err := s.List(dir, 3)
		require.NoError(t, err)
		assert.Equal(t, 6, listing.Total)
		assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, listing.Names)
	})

	t.Run("no limit", func(t *testing.T) {
		listing, err := s.List(dir, 0)
		require.NoError(t, err)
		assert.Len(t, listing.Names, 6)
		assert.Equal(t, "sub"+string(filepath.Separator), listing.Names[5])
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := s.List(filepath.Join(dir, "nope"), 3)
		assert.Error(t, err)
	})
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	s := newTestService(t, dir)
	target := filepath.Join(dir, "out")

	created, err := s.EnsureDir(target)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureDir(target)
	require.NoError(t, err)
	assert.False(t, created)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = s.EnsureDir(file)
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	s := newTestService(t, dir)
	path := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(path, []byte("module example\n"), 0o644))

	info, found, err := s.Inspect(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(15), info.Size)

	_, found, err = s.Inspect(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTimes(t *testing.T) {
	s := newTestService(t, t.TempDir())

	report, err := s.Times()
	require.NoError(t, err)

	assert.Equal(t, "2024-Jan-09 22:15:30", report.Now.Format(TimeLayout))
	assert.Equal(t, "2024-Jan-10 22:15:30", report.Later.Format(TimeLayout))
	assert.Equal(t, "2024-Jan-09", report.Today.Format(DateLayout))
	assert.Equal(t, "2024-Jan-16", report.NextWeek.Format(DateLayout))
	assert.Equal(t, 2*time.Hour+30*time.Minute+15*time.Second, report.Duration)
}

func TestTimesInvalidDuration(t *testing.T) {
	s := newTestService(t, t.TempDir())
	s.dtCfg.Duration = "soon"

	_, err := s.Times()
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{2*time.Hour + 30*time.Minute + 15*time.Second, "02:30:15"},
		{0, "00:00:00"},
		{100 * time.Hour, "100:00:00"},
		{-(time.Minute + time.Second), "-00:01:01"},
		{time.Second + 250*time.Millisecond, "00:00:01.25"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestRunFilesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example\n"), 0o644))
	s := newTestService(t, dir)

	result, err := s.RunFilesystem(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Enabled)
	assert.Equal(t, FilesystemTitle, result.Title)
	require.Len(t, result.Steps, 4)
	for _, step := range result.Steps {
		assert.Equal(t, model.StepOK, step.Status, step.Name)
	}
	assert.Contains(t, result.Steps[2].Detail, "Created directory")
	assert.DirExists(t, filepath.Join(dir, "test_output"))
	assert.Contains(t, result.Steps[3].Detail, "15 bytes")

	again, err := s.RunFilesystem(context.Background())
	require.NoError(t, err)
	assert.Contains(t, again.Steps[2].Detail, "already exists")
	assert.Contains(t, again.Steps[1].Detail, "2 entries")
}

func TestRunFilesystemMissingInspectFile(t *testing.T) {
	s := newTestService(t, t.TempDir())

	result, err := s.RunFilesystem(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Steps, 4)
	assert.Equal(t, model.StepSkipped, result.Steps[3].Status)
}

func TestRunDateTime(t *testing.T) {
	s := newTestService(t, t.TempDir())

	result, err := s.RunDateTime(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Steps, 5)
	assert.Equal(t, "Current time: 2024-Jan-09 22:15:30", result.Steps[0].Detail)
	assert.True(t, strings.HasSuffix(result.Steps[1].Detail, "2024-Jan-10 22:15:30"))
	assert.Equal(t, "Today: 2024-Jan-09", result.Steps[2].Detail)
	assert.Equal(t, "7 days later: 2024-Jan-16", result.Steps[3].Detail)
	assert.Equal(t, "Duration: 02:30:15", result.Steps[4].Detail)
}

func TestRunCancelled(t *testing.T) {
	s := newTestService(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.RunFilesystem(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.RunDateTime(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
