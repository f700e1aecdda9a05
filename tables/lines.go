package tables

import (
	"sort"
	"strings"
)

// StrategyLines is the registry name of the line-based preset
const StrategyLines = "lines"

// LinesConfig holds configuration for line-based grid detection
type LinesConfig struct {
	// MinRows is the minimum number of grid rows for a valid table
	MinRows int

	// MinCols is the minimum number of grid columns for a valid table
	MinCols int

	// AlignmentTolerance groups nearly-collinear rules into one grid cut
	AlignmentTolerance float64
}

// DefaultLinesConfig returns default configuration
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		MinRows:            2,
		MinCols:            2,
		AlignmentTolerance: 2.0,
	}
}

// LinesStrategy detects tables from ruling lines and rectangle edges: the
// distinct horizontal cut positions become row boundaries, the vertical
// cuts become column boundaries, and text runs are binned into the
// resulting cells by their center point.
type LinesStrategy struct {
	config LinesConfig
}

// NewLinesStrategy creates a line-based strategy with defaults
func NewLinesStrategy() *LinesStrategy {
	return &LinesStrategy{config: DefaultLinesConfig()}
}

// NewLinesStrategyWithConfig creates a line-based strategy with custom
// configuration
func NewLinesStrategyWithConfig(config LinesConfig) *LinesStrategy {
	return &LinesStrategy{config: config}
}

// Name returns the strategy's registry name
func (s *LinesStrategy) Name() string { return StrategyLines }

// Extract builds a cell grid from the page's ruling lines
func (s *LinesStrategy) Extract(page PageGeometry) ([]RawTable, error) {
	var hCuts, vCuts []float64
	for _, rule := range page.Rules {
		if rule.IsHorizontal() {
			hCuts = append(hCuts, (rule.Y0+rule.Y1)/2)
		} else {
			vCuts = append(vCuts, (rule.X0+rule.X1)/2)
		}
	}

	ys := clusterPositions(hCuts, s.config.AlignmentTolerance)
	xs := clusterPositions(vCuts, s.config.AlignmentTolerance)

	// n cuts delimit n-1 intervals.
	if len(ys)-1 < s.config.MinRows || len(xs)-1 < s.config.MinCols {
		return nil, nil
	}

	grid := fillGrid(page.Runs, xs, ys)
	if grid == nil {
		return nil, nil
	}
	return []RawTable{{Cells: grid}}, nil
}

// clusterPositions groups nearby values and returns one representative
// (the group mean) per cluster, sorted ascending
func clusterPositions(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var out []float64
	groupStart := sorted[0]
	sum, n := sorted[0], 1
	for _, v := range sorted[1:] {
		if v-groupStart <= tolerance {
			sum += v
			n++
			continue
		}
		out = append(out, sum/float64(n))
		groupStart, sum, n = v, v, 1
	}
	out = append(out, sum/float64(n))
	return out
}

// fillGrid bins runs into the cells delimited by the cut positions. Runs
// outside the grid extent are ignored; runs sharing a cell are joined
// with a space in reading order.
func fillGrid(runs []TextRun, xs, ys []float64) [][]string {
	rows := len(ys) - 1
	cols := len(xs) - 1

	cells := make([][][]TextRun, rows)
	for r := range cells {
		cells[r] = make([][]TextRun, cols)
	}

	filled := false
	for _, run := range runs {
		cx := run.X + run.W/2
		cy := run.Y + run.H/2
		r := intervalIndex(ys, cy)
		c := intervalIndex(xs, cx)
		if r < 0 || c < 0 {
			continue
		}
		cells[r][c] = append(cells[r][c], run)
		filled = true
	}
	if !filled {
		return nil
	}

	grid := make([][]string, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			grid[r][c] = joinRuns(cells[r][c])
		}
	}
	return grid
}

// intervalIndex returns the index i such that cuts[i] <= v < cuts[i+1],
// or -1 if v lies outside the cuts
func intervalIndex(cuts []float64, v float64) int {
	for i := 0; i < len(cuts)-1; i++ {
		if v >= cuts[i] && v < cuts[i+1] {
			return i
		}
	}
	return -1
}

// joinRuns joins a cell's runs with spaces, top-to-bottom then
// left-to-right
func joinRuns(runs []TextRun) string {
	if len(runs) == 0 {
		return ""
	}
	sorted := make([]TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	parts := make([]string, 0, len(sorted))
	for _, run := range sorted {
		if run.Text != "" {
			parts = append(parts, run.Text)
		}
	}
	return strings.Join(parts, " ")
}
