package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/navkit/nav-eval/go-harness/internal/fixture"
	"github.com/navkit/nav-eval/go-harness/internal/results"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to eval_results.db")
	runID := flag.String("run", "", "run ID to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *runID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/eval_results.db --run id --out path/to/fixture.json")
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

	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	c, err := store.EpisodeMetrics(runID)
	if err != nil {
		return err
	}
	if c.Len() == 0 {
		return fmt.Errorf("run %s has no recorded episodes", runID)
	}

	desc := fmt.Sprintf("Run %s export: %d episodes, input=%s physics=%v",
		runID, c.Len(), rec.InputType, rec.EnablePhysics)
	fx, err := fixture.FromCollection(desc, c)
	if err != nil {
		return err
	}
	fx.PhysicsAvailable = rec.EnablePhysics

	if err := fixture.Save(outPath, fx); err != nil {
		return err
	}

	fmt.Printf("Wrote fixture to %s (%d episodes)\n", outPath, len(fx.Episodes))
	return nil
}

// #endregion export
