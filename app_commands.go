package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/mylib-demo/mylib"
	"github.com/thirukguru/mylib-demo/service/storage"
	"github.com/thirukguru/mylib-demo/shared/trends"
)

// newStorage opens the history database. Tests replace it.
var newStorage = storage.NewService

var stdout io.Writer = os.Stdout

func dbPathUsage() string {
	return "SQLite database path (default " + storage.DefaultDBPath() + ")"
}

func runSubcommand(cmd string, args []string) error {
	switch cmd {
	case "calc":
		return runCalcCommand(args)
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runCalcCommand(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: mylib-demo calc <add|multiply> <a> <b>")
	}
	a, err := parseInt32(args[1])
	if err != nil {
		return err
	}
	b, err := parseInt32(args[2])
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		fmt.Fprintf(stdout, "Add(%d, %d) = %d\n", a, b, mylib.Add(a, b))
	case "multiply":
		fmt.Fprintf(stdout, "Multiply(%d, %d) = %d\n", a, b, mylib.Multiply(a, b))
	default:
		return fmt.Errorf("unsupported calc operation: %s", args[0])
	}
	return nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: want a 32-bit integer", s)
	}
	return int32(v), nil
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", dbPathUsage())
	olderThan := fs.Int("older-than", 30, "Purge runs older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: mylib-demo db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := newStorage(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	switch rest[0] {
	case "vacuum":
		return store.Vacuum(ctx)
	case "reindex":
		return store.Reindex(ctx)
	case "purge":
		count, err := store.PurgeOlderThan(ctx, *olderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Purged %d runs\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", rest[0])
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", dbPathUsage())
	limit := fs.Int("limit", 20, "Number of runs to list")
	days := fs.Int("days", 30, "Trend window in days")
	exportJSON := fs.String("export-json", "", "Write trend points to a JSON file")
	exportCSV := fs.String("export-csv", "", "Write trend points to a CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: mylib-demo history <list|show|step|trends|compare>")
	}

	store, err := newStorage(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch rest[0] {
	case "list":
		runs, err := store.GetRecentRuns(*limit)
		if err != nil {
			return err
		}
		trends.RenderRunTable(stdout, runs)
		return nil
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: mylib-demo history show <run-uuid>")
		}
		run, err := lookupRun(store, rest[1])
		if err != nil {
			return err
		}
		steps, err := store.ListSteps(run.RunID)
		if err != nil {
			return err
		}
		trends.RenderStepTable(stdout, run, steps)
		return nil
	case "step":
		if len(rest) < 3 {
			return fmt.Errorf("usage: mylib-demo history step <demo-title> <step-name>")
		}
		events, err := store.GetStepLifecycle(rest[1], strings.Join(rest[2:], " "))
		if err != nil {
			return err
		}
		trends.RenderLifecycleTable(stdout, events)
		return nil
	case "trends":
		return runTrendWorkflow(store, trendOptions{Days: *days, ExportJSON: *exportJSON, ExportCSV: *exportCSV})
	case "compare":
		return runCompareWorkflow(store, rest[1:])
	default:
		return fmt.Errorf("unsupported history command: %s", rest[0])
	}
}

func lookupRun(store storage.Service, runUUID string) (*storage.RunSummary, error) {
	run, err := store.GetRun(runUUID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("run %q not found", runUUID)
	}
	return run, nil
}

// runCompareWorkflow compares two runs given by UUID, or the two most recent
// runs when none are given.
func runCompareWorkflow(store storage.Service, ids []string) error {
	var older, newer int64
	switch len(ids) {
	case 0:
		runs, err := store.GetRecentRuns(2)
		if err != nil {
			return err
		}
		if len(runs) < 2 {
			return fmt.Errorf("need at least two recorded runs to compare")
		}
		older, newer = runs[1].RunID, runs[0].RunID
	case 2:
		r1, err := lookupRun(store, ids[0])
		if err != nil {
			return err
		}
		r2, err := lookupRun(store, ids[1])
		if err != nil {
			return err
		}
		older, newer = r1.RunID, r2.RunID
	default:
		return fmt.Errorf("usage: mylib-demo history compare [<run-uuid> <run-uuid>]")
	}

	cmp, err := store.GetRunComparison(older, newer)
	if err != nil {
		return err
	}
	trends.RenderComparisonTable(stdout, cmp)
	return nil
}

type trendOptions struct {
	Days       int
	ExportJSON string
	ExportCSV  string
}

func runTrendWorkflow(store storage.Service, opts trendOptions) error {
	points, err := store.GetTrends(opts.Days)
	if err != nil {
		return err
	}
	trends.RenderTrendTable(stdout, points)

	if strings.TrimSpace(opts.ExportJSON) != "" {
		b, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.ExportJSON, b, 0o644); err != nil {
			return err
		}
	}
	if strings.TrimSpace(opts.ExportCSV) != "" {
		f, err := os.Create(opts.ExportCSV)
		if err != nil {
			return err
		}
		defer f.Close()
		w := csv.NewWriter(f)
		_ = w.Write([]string{"date", "runs", "total_steps", "failed_steps", "avg_duration_ms", "success_rate"})
		for _, p := range points {
			_ = w.Write([]string{
				p.Date, strconv.Itoa(p.Runs), strconv.Itoa(p.TotalSteps), strconv.Itoa(p.FailedSteps),
				strconv.FormatFloat(p.AvgMS, 'f', 1, 64), strconv.Itoa(p.SuccessRate),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}

	return nil
}
