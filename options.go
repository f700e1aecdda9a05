package factsheet

import (
	"github.com/fundlens/factsheet/layout"
	"github.com/fundlens/factsheet/reader"
	"github.com/fundlens/factsheet/tables"
)

// ParseOptions holds configuration for a parse run.
type ParseOptions struct {
	// Heading classification
	headingThreshold float64

	// Paragraph splitting
	splitThreshold int

	// Table detection strategy names, applied in order
	strategies []string

	// Page decomposition
	readerConfig reader.Config
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		headingThreshold: layout.DefaultHeadingThreshold,
		splitThreshold:   layout.DefaultSplitThreshold,
		strategies:       []string{tables.StrategyLines, tables.StrategyText},
		readerConfig:     reader.DefaultConfig(),
	}
}

// clone creates a deep copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	newOpts := o
	if o.strategies != nil {
		newOpts.strategies = make([]string, len(o.strategies))
		copy(newOpts.strategies, o.strategies)
	}
	return newOpts
}
