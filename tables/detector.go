package tables

import "strings"

// TextRun is a positioned run of text on a page, in top-left coordinates
type TextRun struct {
	Text string
	X    float64 // left edge
	Y    float64 // top edge
	W    float64 // width
	H    float64 // height
}

// Rule is a ruling-line segment or rectangle edge, in top-left coordinates
type Rule struct {
	X0, Y0 float64
	X1, Y1 float64
}

// IsHorizontal reports whether the rule runs mostly left-to-right
func (r Rule) IsHorizontal() bool {
	dx := r.X1 - r.X0
	dy := r.Y1 - r.Y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx >= dy
}

// PageGeometry is the raw material for table detection on one page
type PageGeometry struct {
	Width  float64
	Height float64
	Runs   []TextRun
	Rules  []Rule
}

// RawTable is a rectangular grid of cell strings as returned by a
// detection strategy; the first row is treated as the header.
type RawTable struct {
	Cells [][]string
}

// IsEmpty reports whether every cell is blank or whitespace-only
func (t RawTable) IsEmpty() bool {
	for _, row := range t.Cells {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}

// Strategy is the interface for table detection algorithms
type Strategy interface {
	// Name returns the strategy's registry name
	Name() string

	// Extract finds raw tables in a page's geometry
	Extract(page PageGeometry) ([]RawTable, error)
}

// StrategyRegistry holds registered detection strategies
type StrategyRegistry struct {
	strategies map[string]Strategy
	order      []string
}

// NewRegistry creates a new strategy registry
func NewRegistry() *StrategyRegistry {
	return &StrategyRegistry{
		strategies: make(map[string]Strategy),
	}
}

// Register registers a strategy
func (r *StrategyRegistry) Register(s Strategy) {
	if _, ok := r.strategies[s.Name()]; !ok {
		r.order = append(r.order, s.Name())
	}
	r.strategies[s.Name()] = s
}

// Get retrieves a strategy by name
func (r *StrategyRegistry) Get(name string) Strategy {
	return r.strategies[name]
}

// List returns all registered strategy names in registration order
func (r *StrategyRegistry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterStrategy registers a strategy globally
func RegisterStrategy(s Strategy) {
	globalRegistry.Register(s)
}

// GetStrategy retrieves a globally registered strategy by name
func GetStrategy(name string) Strategy {
	return globalRegistry.Get(name)
}

// ListStrategies returns all globally registered strategy names
func ListStrategies() []string {
	return globalRegistry.List()
}

func init() {
	// The two default presets, in the order the extractor runs them.
	RegisterStrategy(NewLinesStrategy())
	RegisterStrategy(NewTextStrategy())
}
