package tables

import (
	"fmt"
	"strings"

	"github.com/fundlens/factsheet/model"
)

// Extractor runs detection strategies over pages and deduplicates their
// results by structural fingerprint.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor creates an extractor running the two default presets in
// order: line-based geometry detection, then text-alignment detection.
func NewExtractor() *Extractor {
	return NewExtractorWithStrategies(GetStrategy(StrategyLines), GetStrategy(StrategyText))
}

// NewExtractorWithStrategies creates an extractor with an explicit
// strategy list, run in the given order
func NewExtractorWithStrategies(strategies ...Strategy) *Extractor {
	e := &Extractor{}
	for _, s := range strategies {
		if s != nil {
			e.strategies = append(e.strategies, s)
		}
	}
	return e
}

// fingerprint is the structural dedup key: normalized headers + row count
func fingerprint(t *model.Table) string {
	return fmt.Sprintf("%s\x1f%d", strings.Join(t.Headers, "\x1f"), len(t.Rows))
}

// ExtractPage runs every strategy over one page's geometry and returns the
// distinct normalized tables in first-seen order. A strategy failure is
// treated as that strategy finding nothing; all-empty grids are skipped;
// later duplicates of an already-seen fingerprint are silently dropped.
func (e *Extractor) ExtractPage(page PageGeometry) []*model.Table {
	var out []*model.Table
	seen := make(map[string]bool)

	for _, strategy := range e.strategies {
		raws, err := strategy.Extract(page)
		if err != nil {
			continue
		}
		for _, raw := range raws {
			if len(raw.Cells) == 0 || raw.IsEmpty() {
				continue
			}
			norm := NormalizeTable(raw.Cells[0], raw.Cells[1:])
			key := fingerprint(norm)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, norm)
		}
	}

	return out
}

// ExtractPages runs extraction over every page and returns tables keyed by
// 0-based page index; pages with no tables are absent from the result.
func (e *Extractor) ExtractPages(pages []PageGeometry) map[int][]*model.Table {
	result := make(map[int][]*model.Table)
	for i, page := range pages {
		if tables := e.ExtractPage(page); len(tables) > 0 {
			result[i] = tables
		}
	}
	return result
}
