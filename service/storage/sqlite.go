package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultDBPath = "~/.mylib-demo/history.db"
	tsLayout      = "2006-01-02 15:04:05"
)

// DefaultDBPath is the history database used when no path is given.
func DefaultDBPath() string { return defaultDBPath }

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.LibVersion == "" {
		return 0, errors.New("library version is required")
	}
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	if input.StartedAt.IsZero() {
		input.StartedAt = time.Now()
	}

	enabled, total, failed := 0, 0, 0
	for _, d := range input.Demos {
		if d.Enabled {
			enabled++
		}
		for _, st := range d.Steps {
			total++
			if st.Status == "FAILED" {
				failed++
			}
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_uuid, run_timestamp, run_duration_ms, lib_version, cli_version, run_flags,
			enabled_demos, total_steps, failed_steps
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.StartedAt.UTC().Format(tsLayout), input.DurationMS, input.LibVersion,
		input.Version, input.FlagsJSON, enabled, total, failed)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err = s.saveDemosTx(ctx, tx, runID, input); err != nil {
		return 0, err
	}
	if err = s.saveRunMetricsTx(ctx, tx, runID, input, total, failed); err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *service) saveDemosTx(ctx context.Context, tx *sql.Tx, runID int64, input SaveRunInput) error {
	for _, d := range input.Demos {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO demos (run_id, name, title, enabled, build_tag)
			VALUES (?, ?, ?, ?, ?)
		`, runID, d.Name, d.Title, d.Enabled, d.BuildTag)
		if err != nil {
			return err
		}
		demoID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for i, st := range d.Steps {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO steps (run_id, demo_id, demo_title, seq, name, status, detail, artifact, duration_ms)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, runID, demoID, d.Title, i+1, st.Name, st.Status, st.Detail, st.Artifact, st.DurationMS)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *service) saveRunMetricsTx(ctx context.Context, tx *sql.Tx, runID int64, input SaveRunInput, total, failed int) error {
	artifacts := 0
	for _, d := range input.Demos {
		for _, st := range d.Steps {
			if st.Artifact != "" {
				artifacts++
			}
		}
	}
	metrics := []struct {
		name string
		val  float64
		unit string
	}{
		{"total_steps", float64(total), "count"},
		{"failed_steps", float64(failed), "count"},
		{"artifacts", float64(artifacts), "count"},
		{"duration", float64(input.DurationMS), "ms"},
		{"success_rate", float64(successRate(total, failed)), "percent"},
	}
	for _, m := range metrics {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO metrics(run_id, metric_name, metric_value, metric_unit)
			VALUES (?, ?, ?, ?)
		`, runID, m.name, m.val, m.unit)
		if err != nil {
			return err
		}
	}
	return nil
}

func successRate(total, failed int) int {
	if total == 0 {
		return 100
	}
	return (total - failed) * 100 / total
}

func (s *service) GetTrends(days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	rows, err := s.db.Query(`
		SELECT
			DATE(run_timestamp) as day,
			COUNT(*),
			SUM(total_steps),
			SUM(failed_steps),
			AVG(run_duration_ms)
		FROM runs
		WHERE run_timestamp >= DATETIME('now', ?)
		GROUP BY DATE(run_timestamp) ORDER BY day ASC
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []TrendPoint{}
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Date, &p.Runs, &p.TotalSteps, &p.FailedSteps, &p.AvgMS); err != nil {
			return nil, err
		}
		p.SuccessRate = successRate(p.TotalSteps, p.FailedSteps)
		points = append(points, p)
	}
	return points, rows.Err()
}

const runColumns = `run_id, run_uuid, run_timestamp, run_duration_ms, lib_version, cli_version,
	enabled_demos, total_steps, failed_steps`

func scanRun(sc interface{ Scan(...any) error }) (RunSummary, error) {
	var r RunSummary
	var version sql.NullString
	err := sc.Scan(&r.RunID, &r.RunUUID, &r.RunTimestamp, &r.DurationMS, &r.LibVersion, &version,
		&r.EnabledDemos, &r.TotalSteps, &r.FailedSteps)
	r.Version = version.String
	return r, err
}

func (s *service) GetRecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs ORDER BY run_timestamp DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun looks a run up by UUID or UUID prefix. It returns nil when
// nothing matches.
func (s *service) GetRun(runUUID string) (*RunSummary, error) {
	runUUID = strings.TrimSpace(runUUID)
	if runUUID == "" {
		return nil, errors.New("run id is required")
	}
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE run_uuid LIKE ? ORDER BY run_id LIMIT 2`,
		escapeLike(runUUID)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []RunSummary
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("run id %q is ambiguous", runUUID)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}

func (s *service) GetRunComparison(runID1, runID2 int64) (*RunComparison, error) {
	first, err := s.stepStatusByRun(runID1)
	if err != nil {
		return nil, err
	}
	second, err := s.stepStatusByRun(runID2)
	if err != nil {
		return nil, err
	}

	cmp := &RunComparison{RunID1: runID1, RunID2: runID2}
	for key, status := range second {
		before, seen := first[key]
		switch {
		case status == "FAILED" && (!seen || before != "FAILED"):
			cmp.FailedKeys = append(cmp.FailedKeys, key)
		case seen && before == "FAILED" && status != "FAILED":
			cmp.RecoveredKeys = append(cmp.RecoveredKeys, key)
		case seen:
			cmp.Unchanged++
		}
	}
	sort.Strings(cmp.FailedKeys)
	sort.Strings(cmp.RecoveredKeys)
	cmp.NewlyFailed = len(cmp.FailedKeys)
	cmp.Recovered = len(cmp.RecoveredKeys)
	return cmp, nil
}

func (s *service) stepStatusByRun(runID int64) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT demo_title, name, status FROM steps WHERE run_id=?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var demo, name, status string
		if err := rows.Scan(&demo, &name, &status); err != nil {
			return nil, err
		}
		out[demo+"/"+name] = status
	}
	return out, rows.Err()
}

func (s *service) GetStepLifecycle(demo, step string) ([]StepLifecycleEvent, error) {
	rows, err := s.db.Query(`
		SELECT st.run_id, r.run_timestamp, st.status, COALESCE(st.detail, ''), st.duration_ms
		FROM steps st
		JOIN runs r ON r.run_id = st.run_id
		WHERE st.demo_title=? AND st.name=?
		ORDER BY r.run_timestamp ASC, st.run_id ASC
	`, demo, step)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []StepLifecycleEvent{}
	for rows.Next() {
		var e StepLifecycleEvent
		if err := rows.Scan(&e.RunID, &e.RunTimestamp, &e.Status, &e.Detail, &e.DurationMS); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *service) ListSteps(runID int64) ([]StepSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT demo_title, seq, name, status, COALESCE(detail, ''), COALESCE(artifact, ''), duration_ms
		FROM steps WHERE run_id=? ORDER BY step_id ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []StepSnapshot{}
	for rows.Next() {
		var st StepSnapshot
		if err := rows.Scan(&st.Demo, &st.Seq, &st.Name, &st.Status, &st.Detail, &st.Artifact, &st.DurationMS); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE run_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
