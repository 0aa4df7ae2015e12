package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/navkit/nav-eval/go-harness/internal/evaluator"
	"github.com/navkit/nav-eval/go-harness/internal/fixture"
	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	"github.com/navkit/nav-eval/go-harness/internal/simclient"
)

// tolerance for comparing recomputed aggregates against the recorded ones.
const epsilon = 1e-9

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	code, err := run(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(code)
}

// #endregion main

// #region replay

// run re-evaluates a recorded fixture through the same aggregation path a
// live run uses and compares the averages against the ones recorded at
// capture time. Exit 0 on match, 1 on divergence.
func run(path string) (int, error) {
	fx, err := fixture.Load(path)
	if err != nil {
		return 0, err
	}
	if len(fx.ExpectedAvg) == 0 {
		return 0, fmt.Errorf("fixture %s carries no expected averages", path)
	}

	player := fixture.NewPlayer(fx)
	ev := replayEvaluator{player: player}

	outcome, err := ev.evaluate(context.Background())
	if err != nil {
		return 0, err
	}
	avg, err := metrics.ComputeAvg(outcome)
	if err != nil {
		return 0, err
	}

	return printComparison(fx.ExpectedAvg, avg), nil
}

// replayEvaluator walks the fixture's episodes the way a live evaluation
// walks the dataset: full episode list, dataset order, metrics collected per
// episode.
type replayEvaluator struct {
	player *fixture.Player
}

func (e replayEvaluator) evaluate(ctx context.Context) (*metrics.Collection, error) {
	episodes, err := e.player.ListEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	c := metrics.NewCollection()
	for _, ref := range episodes {
		out, err := e.player.RunEpisode(ctx, simclient.EpisodeSpec{
			EpisodeID: ref.EpisodeID,
			SceneID:   ref.SceneID,
			AgentSeed: evaluator.DefaultAgentSeed,
		})
		if err != nil {
			return nil, fmt.Errorf("episode %s: %w", metrics.Key(ref.EpisodeID, ref.SceneID), err)
		}
		c.Add(metrics.Key(ref.EpisodeID, ref.SceneID), out.Metrics)
	}
	return c, nil
}

// #endregion replay

// #region output

func printComparison(expected, replayed map[string]float64) int {
	names := make(map[string]struct{}, len(expected))
	for name := range expected {
		names[name] = struct{}{}
	}
	for name := range replayed {
		names[name] = struct{}{}
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	fmt.Printf("%-24s| %-12s| %-12s| %s\n", "Metric", "Expected", "Replayed", "Match")
	fmt.Printf("%-24s+%-13s+%-13s+%s\n",
		"------------------------", "-------------", "-------------", "------")

	diverged := 0
	for _, name := range ordered {
		exp, expOK := expected[name]
		got, gotOK := replayed[name]
		match := "DIFF"
		if expOK && gotOK && math.Abs(exp-got) < epsilon {
			match = "OK"
		} else {
			diverged++
		}
		fmt.Printf("%-24s| %-12s| %-12s| %s\n", name, formatVal(exp, expOK), formatVal(got, gotOK), match)
	}

	fmt.Printf("\nSummary: %d metrics, %d diverge\n", len(ordered), diverged)
	if diverged > 0 {
		return 1
	}
	return 0
}

func formatVal(v float64, ok bool) string {
	if !ok {
		return "missing"
	}
	return fmt.Sprintf("%.6f", v)
}

// #endregion output
