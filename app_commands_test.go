package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/storage"
)

func init() {
	text.DisableColors()
}

type mockStorage struct {
	points  []storage.TrendPoint
	runs    []storage.RunSummary
	cmp     *storage.RunComparison
	cmpArgs [2]int64
	purged  int
	closed  bool
}

func (m *mockStorage) SaveRun(context.Context, storage.SaveRunInput) (int64, error) {
	return 0, nil
}
func (m *mockStorage) GetTrends(int) ([]storage.TrendPoint, error) {
	return m.points, nil
}
func (m *mockStorage) GetRecentRuns(limit int) ([]storage.RunSummary, error) {
	if limit < len(m.runs) {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}
func (m *mockStorage) GetRun(runUUID string) (*storage.RunSummary, error) {
	for i := range m.runs {
		if strings.HasPrefix(m.runs[i].RunUUID, runUUID) {
			return &m.runs[i], nil
		}
	}
	return nil, nil
}
func (m *mockStorage) GetRunComparison(runID1, runID2 int64) (*storage.RunComparison, error) {
	m.cmpArgs = [2]int64{runID1, runID2}
	return m.cmp, nil
}
func (m *mockStorage) GetStepLifecycle(string, string) ([]storage.StepLifecycleEvent, error) {
	return nil, nil
}
func (m *mockStorage) ListSteps(int64) ([]storage.StepSnapshot, error) {
	return []storage.StepSnapshot{{Demo: "Vision", Seq: 1, Name: "gen image const", Status: "OK"}}, nil
}
func (m *mockStorage) Vacuum(context.Context) error  { return nil }
func (m *mockStorage) Reindex(context.Context) error { return nil }
func (m *mockStorage) PurgeOlderThan(_ context.Context, days int) (int64, error) {
	m.purged = days
	return 3, nil
}
func (m *mockStorage) Close() error {
	m.closed = true
	return nil
}

func useMockStorage(t *testing.T, m *mockStorage) *bytes.Buffer {
	t.Helper()
	oldStorage, oldStdout := newStorage, stdout
	var buf bytes.Buffer
	newStorage = func(string) (storage.Service, error) { return m, nil }
	stdout = &buf
	t.Cleanup(func() {
		newStorage, stdout = oldStorage, oldStdout
	})
	return &buf
}

func TestRunTrendWorkflowExports(t *testing.T) {
	tmp := t.TempDir()
	jsonPath := filepath.Join(tmp, "trends.json")
	csvPath := filepath.Join(tmp, "trends.csv")

	store := &mockStorage{
		points: []storage.TrendPoint{
			{Date: "2026-10-18", Runs: 2, TotalSteps: 40, FailedSteps: 0, AvgMS: 900, SuccessRate: 100},
			{Date: "2026-10-19", Runs: 1, TotalSteps: 20, FailedSteps: 1, AvgMS: 1250.5, SuccessRate: 95},
		},
	}
	useMockStorage(t, store)

	err := runTrendWorkflow(store, trendOptions{Days: 30, ExportJSON: jsonPath, ExportCSV: csvPath})
	if err != nil {
		t.Fatalf("runTrendWorkflow failed: %v", err)
	}

	jsonBytes, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed reading exported json: %v", err)
	}
	var out []storage.TrendPoint
	if err := json.Unmarshal(jsonBytes, &out); err != nil {
		t.Fatalf("invalid json export: %v", err)
	}
	if len(out) != 2 || out[1].SuccessRate != 95 {
		t.Fatalf("unexpected json export content: %+v", out)
	}

	csvBytes, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("failed reading exported csv: %v", err)
	}
	csv := string(csvBytes)
	if !strings.HasPrefix(csv, "date,runs,total_steps") {
		t.Fatalf("csv header missing: %s", csv)
	}
	if !strings.Contains(csv, "2026-10-19,1,20,1,1250.5,95") {
		t.Fatalf("csv content missing expected row: %s", csv)
	}
}

func TestCalcCommand(t *testing.T) {
	buf := useMockStorage(t, &mockStorage{})

	if err := runSubcommand("calc", []string{"add", "2", "3"}); err != nil {
		t.Fatalf("calc add failed: %v", err)
	}
	if err := runSubcommand("calc", []string{"multiply", "-4", "5"}); err != nil {
		t.Fatalf("calc multiply failed: %v", err)
	}
	want := "Add(2, 3) = 5\nMultiply(-4, 5) = -20\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q, want %q", buf.String(), want)
	}

	if err := runSubcommand("calc", []string{"add", "2147483648", "1"}); err == nil {
		t.Fatal("expected error for operand outside int32")
	}
	if err := runSubcommand("calc", []string{"divide", "1", "1"}); err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if err := runSubcommand("calc", []string{"add"}); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestDBPurge(t *testing.T) {
	store := &mockStorage{}
	buf := useMockStorage(t, store)

	if err := runSubcommand("db", []string{"purge", "--older-than", "7"}); err != nil {
		t.Fatalf("db purge failed: %v", err)
	}
	if store.purged != 7 || !store.closed {
		t.Fatalf("purge not forwarded: days=%d closed=%v", store.purged, store.closed)
	}
	if buf.String() != "Purged 3 runs\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := runSubcommand("db", []string{"shrink"}); err == nil {
		t.Fatal("expected error for unknown db command")
	}
}

func TestHistoryShowAndCompare(t *testing.T) {
	now := time.Now()
	store := &mockStorage{
		runs: []storage.RunSummary{
			{RunID: 2, RunUUID: "bbbb-2222", RunTimestamp: now},
			{RunID: 1, RunUUID: "aaaa-1111", RunTimestamp: now.Add(-time.Hour)},
		},
		cmp: &storage.RunComparison{RunID1: 1, RunID2: 2, Unchanged: 19, Recovered: 1},
	}
	buf := useMockStorage(t, store)

	if err := runSubcommand("history", []string{"show", "aaaa"}); err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(buf.String(), "gen image const") {
		t.Fatalf("step table missing: %s", buf.String())
	}
	if err := runSubcommand("history", []string{"show", "zzzz"}); err == nil {
		t.Fatal("expected not-found error")
	}

	if err := runSubcommand("history", []string{"compare"}); err != nil {
		t.Fatalf("history compare failed: %v", err)
	}
	if store.cmpArgs != [2]int64{1, 2} {
		t.Fatalf("compare should diff older against newer, got %v", store.cmpArgs)
	}

	if err := runSubcommand("history", []string{"compare", "bbbb", "aaaa"}); err != nil {
		t.Fatalf("history compare by uuid failed: %v", err)
	}
	if store.cmpArgs != [2]int64{2, 1} {
		t.Fatalf("unexpected compare args %v", store.cmpArgs)
	}
}

func TestHistoryListAgainstSQLite(t *testing.T) {
	oldStdout := stdout
	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = oldStdout })

	dbPath := filepath.Join(t.TempDir(), "history.db")
	if err := runSubcommand("history", []string{"list", "--db-path", dbPath}); err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := model.Config{WorkDir: "."}
	applyFlagOverrides(&cfg, model.Flags{WorkDir: " /tmp/out ", VisionPipeline: true})
	if cfg.WorkDir != "/tmp/out" || !cfg.Vision.FullPipeline {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	cfg = model.Config{WorkDir: "data"}
	applyFlagOverrides(&cfg, model.Flags{})
	if cfg.WorkDir != "data" || cfg.Vision.FullPipeline {
		t.Fatalf("empty flags must not override config: %+v", cfg)
	}
}

func TestRegisteredDemosOrder(t *testing.T) {
	demos := registeredDemos(model.Config{})
	if len(demos) != 4 {
		t.Fatalf("expected imaging, filesystem, datetime and vision demos, got %d", len(demos))
	}
}

func TestIgnoredFlagWarnings(t *testing.T) {
	if got := ignoredFlagWarnings(model.Flags{Output: "html", OutputFile: "r.html", Store: true, DBPath: "h.db"}); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
	got := ignoredFlagWarnings(model.Flags{Output: "table", OutputFile: "r.html", DBPath: "h.db"})
	want := []string{"--output-file is ignored unless --output html", "--db-path is ignored without --store"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected warnings %v, want %v", got, want)
	}
}

func TestDBPathUsageNamesDefault(t *testing.T) {
	if !strings.Contains(dbPathUsage(), storage.DefaultDBPath()) {
		t.Fatalf("usage %q does not mention the default path", dbPathUsage())
	}
}
