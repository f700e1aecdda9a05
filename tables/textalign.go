package tables

import (
	"sort"
)

// StrategyText is the registry name of the text-alignment preset
const StrategyText = "text"

// TextConfig holds configuration for text-alignment detection
type TextConfig struct {
	// RowTolerance groups runs into the same row when their top edges
	// are within this distance
	RowTolerance float64

	// ColumnTolerance groups left edges into the same column
	ColumnTolerance float64

	// MinRows is the minimum number of aligned rows for a valid table
	MinRows int

	// MinCols is the minimum number of columns for a valid table
	MinCols int

	// MinColumnSupport is the number of rows a left-edge cluster must
	// appear in to count as a column
	MinColumnSupport int
}

// DefaultTextConfig returns default configuration
func DefaultTextConfig() TextConfig {
	return TextConfig{
		RowTolerance:     3.0,
		ColumnTolerance:  8.0,
		MinRows:          2,
		MinCols:          2,
		MinColumnSupport: 2,
	}
}

// TextStrategy detects tables from text alignment alone: runs are grouped
// into rows by vertical position, recurring left edges across rows become
// column positions, and each row's runs are assigned to the nearest
// column. Pages without repeated multi-column alignment yield nothing.
type TextStrategy struct {
	config TextConfig
}

// NewTextStrategy creates a text-alignment strategy with defaults
func NewTextStrategy() *TextStrategy {
	return &TextStrategy{config: DefaultTextConfig()}
}

// NewTextStrategyWithConfig creates a text-alignment strategy with custom
// configuration
func NewTextStrategyWithConfig(config TextConfig) *TextStrategy {
	return &TextStrategy{config: config}
}

// Name returns the strategy's registry name
func (s *TextStrategy) Name() string { return StrategyText }

// Extract clusters the page's runs into an aligned grid
func (s *TextStrategy) Extract(page PageGeometry) ([]RawTable, error) {
	rows := s.groupRows(page.Runs)

	// Candidate columns: left edges recurring across multi-run rows.
	var edges []float64
	for _, row := range rows {
		if len(row) < s.config.MinCols {
			continue
		}
		for _, run := range row {
			edges = append(edges, run.X)
		}
	}
	columns := s.supportedColumns(edges)
	if len(columns) < s.config.MinCols {
		return nil, nil
	}

	var grid [][]string
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		cells := make([]string, len(columns))
		assigned := false
		for _, run := range row {
			c := s.nearestColumn(columns, run.X)
			if c < 0 {
				continue
			}
			if cells[c] == "" {
				cells[c] = run.Text
			} else {
				cells[c] += " " + run.Text
			}
			assigned = true
		}
		if assigned {
			grid = append(grid, cells)
		}
	}

	if len(grid) < s.config.MinRows {
		return nil, nil
	}
	return []RawTable{{Cells: grid}}, nil
}

// groupRows clusters runs by top edge, each cluster sorted left to right
func (s *TextStrategy) groupRows(runs []TextRun) [][]TextRun {
	if len(runs) == 0 {
		return nil
	}
	sorted := make([]TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]TextRun
	rowTop := sorted[0].Y
	current := []TextRun{sorted[0]}
	for _, run := range sorted[1:] {
		if run.Y-rowTop <= s.config.RowTolerance {
			current = append(current, run)
			continue
		}
		rows = append(rows, sortRow(current))
		rowTop = run.Y
		current = []TextRun{run}
	}
	rows = append(rows, sortRow(current))
	return rows
}

func sortRow(row []TextRun) []TextRun {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	return row
}

// supportedColumns clusters left edges and keeps clusters with enough
// row support to be a column
func (s *TextStrategy) supportedColumns(edges []float64) []float64 {
	if len(edges) == 0 {
		return nil
	}
	sort.Float64s(edges)

	var columns []float64
	groupStart := edges[0]
	sum, n := edges[0], 1
	flush := func() {
		if n >= s.config.MinColumnSupport {
			columns = append(columns, sum/float64(n))
		}
	}
	for _, e := range edges[1:] {
		if e-groupStart <= s.config.ColumnTolerance {
			sum += e
			n++
			continue
		}
		flush()
		groupStart, sum, n = e, e, 1
	}
	flush()
	return columns
}

// nearestColumn returns the index of the column whose position is closest
// to x within the tolerance, or -1
func (s *TextStrategy) nearestColumn(columns []float64, x float64) int {
	best := -1
	bestDist := s.config.ColumnTolerance + 1
	for i, col := range columns {
		dist := x - col
		if dist < 0 {
			dist = -dist
		}
		if dist <= s.config.ColumnTolerance && dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
