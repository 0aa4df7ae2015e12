package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	"github.com/navkit/nav-eval/go-harness/internal/results"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to eval_results.db")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	metricNames := flag.String("metrics", "", "comma-separated metric subset for run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/eval_results.db [--last N] [--run id] [--metrics spl,success] [--json]")
		os.Exit(2)
	}

	store, err := results.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, splitNames(*metricNames), *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID         string `json:"run_id"`
	InputType     string `json:"input_type"`
	ModelPath     string `json:"model_path"`
	EnablePhysics bool   `json:"enable_physics"`
	StartedAt     string `json:"started_at"`
	Completed     bool   `json:"completed"`
}

func runListMode(store *results.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(runs))
	for i, r := range runs {
		rows[i] = listRow{
			RunID:         r.RunID,
			InputType:     r.InputType,
			ModelPath:     r.ModelPath,
			EnablePhysics: r.EnablePhysics,
			StartedAt:     r.StartedAt.Format("2006-01-02T15:04:05Z"),
			Completed:     !r.CompletedAt.IsZero(),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-6s  %-8s  %-9s  %-20s  %s\n",
		"Run", "Input", "Physics", "Status", "Started", "Model")
	fmt.Printf("%-10s+-%-6s+-%-8s+-%-9s+-%-20s+-%s\n",
		"----------", "------", "--------", "---------", "--------------------", "--------------------")
	for _, r := range rows {
		status := "running"
		if r.Completed {
			status = "completed"
		}
		fmt.Printf("%-10s  %-6s  %-8v  %-9s  %-20s  %s\n",
			shortID(r.RunID), r.InputType, r.EnablePhysics, status, r.StartedAt, r.ModelPath)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	RunID    string             `json:"run_id"`
	Episodes []episodeOutput    `json:"episodes"`
	Average  map[string]float64 `json:"average"`
}

type episodeOutput struct {
	Episode string                 `json:"episode"`
	Metrics metrics.EpisodeMetrics `json:"metrics"`
}

func runDetailMode(store *results.Store, runID string, names []string, jsonOut bool) error {
	if _, err := store.GetRun(runID); err != nil {
		return err
	}
	c, err := store.EpisodeMetrics(runID)
	if err != nil {
		return err
	}
	if c.Len() == 0 {
		fmt.Fprintf(os.Stderr, "run %s has no recorded episodes\n", runID)
		return nil
	}

	// A metric subset narrows both episode rows and the aggregate.
	if len(names) > 0 {
		c, err = metrics.Extract(c, names)
		if err != nil {
			return err
		}
	}

	avg, err := metrics.ComputeAvg(c)
	if err != nil {
		return err
	}

	out := detailOutput{RunID: runID, Average: avg}
	for _, key := range c.Keys() {
		m, _ := c.Get(key)
		out.Episodes = append(out.Episodes, episodeOutput{Episode: key, Metrics: m})
	}

	if jsonOut {
		return printJSON(out)
	}

	cols := make([]string, 0, len(avg))
	for name := range avg {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	fmt.Printf("%-40s", "Episode")
	for _, name := range cols {
		fmt.Printf("  %12s", name)
	}
	fmt.Println()
	for _, ep := range out.Episodes {
		fmt.Printf("%-40s", ep.Episode)
		for _, name := range cols {
			if v, ok := ep.Metrics[name]; ok {
				fmt.Printf("  %12.4f", v)
			} else {
				fmt.Printf("  %12s", "—")
			}
		}
		fmt.Println()
	}

	fmt.Printf("\nAverage over %d episodes:\n", c.Len())
	for _, name := range cols {
		fmt.Printf("  %-24s %.4f\n", name, avg[name])
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
