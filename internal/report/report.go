package report

// #region imports
import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	"github.com/xuri/excelize/v2"
)

// #endregion imports

// #region paths
// DefaultPath returns a timestamped workbook path under dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("eval_results_%s.xlsx", time.Now().Format("20060102_150405")))
}

// #endregion paths

// #region workbook
const (
	episodeSheet   = "Episode_Metrics"
	aggregateSheet = "Aggregate"
)

// WriteWorkbook writes one row per episode plus an aggregate sheet of
// per-metric means. Metric columns are discovered from the aggregate, so
// every name that appeared in at least one episode gets a column; episodes
// missing a metric leave the cell empty.
func WriteWorkbook(path string, c *metrics.Collection) error {
	avg, err := metrics.ComputeAvg(c)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(avg))
	for name := range avg {
		names = append(names, name)
	}
	sort.Strings(names)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("close workbook: %v", err)
		}
	}()

	if _, err := f.NewSheet(episodeSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	if _, err := f.NewSheet(aggregateSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	header := make([]interface{}, 0, len(names)+1)
	header = append(header, "Episode")
	for _, name := range names {
		header = append(header, name)
	}
	if err := f.SetSheetRow(episodeSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, key := range c.Keys() {
		m, _ := c.Get(key)
		rowData := make([]interface{}, 0, len(names)+1)
		rowData = append(rowData, key)
		for _, name := range names {
			if v, ok := m[name]; ok {
				rowData = append(rowData, v)
			} else {
				rowData = append(rowData, nil)
			}
		}
		if err := f.SetSheetRow(episodeSheet, fmt.Sprintf("A%d", row), &rowData); err != nil {
			return fmt.Errorf("write episode row: %w", err)
		}
		row++
	}

	aggHeader := []interface{}{"Metric", "Mean"}
	if err := f.SetSheetRow(aggregateSheet, "A1", &aggHeader); err != nil {
		return fmt.Errorf("write aggregate header: %w", err)
	}
	for i, name := range names {
		rowData := []interface{}{name, avg[name]}
		if err := f.SetSheetRow(aggregateSheet, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			return fmt.Errorf("write aggregate row: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// #endregion workbook
