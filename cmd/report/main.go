package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/navkit/nav-eval/go-harness/internal/report"
	"github.com/navkit/nav-eval/go-harness/internal/results"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to eval_results.db")
	runID := flag.String("run", "", "run ID to export")
	outPath := flag.String("out", "", "output workbook path (default: reports/eval_results_<ts>.xlsx)")
	flag.Parse()

	if *dbPath == "" || *runID == "" {
		fmt.Fprintln(os.Stderr, "usage: report --db path/to/eval_results.db --run id [--out results.xlsx]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, runID, outPath string) error {
	store, err := results.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	if _, err := store.GetRun(runID); err != nil {
		return err
	}
	c, err := store.EpisodeMetrics(runID)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = report.DefaultPath("reports")
	}
	if err := report.WriteWorkbook(outPath, c); err != nil {
		return err
	}

	fmt.Printf("Wrote %d episodes to %s\n", c.Len(), outPath)
	return nil
}

// #endregion export
