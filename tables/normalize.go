package tables

import (
	"regexp"
	"strings"

	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/text"
)

// Fragment-merge limits for the short/short rule
const (
	shortCurrentMax = 4
	shortNextMax    = 6
)

var (
	endsWithLetterRE = regexp.MustCompile(`[A-Za-z]$`)
	lowercaseTokenRE = regexp.MustCompile(`^[a-z]{1,6}$`)
	numericCellRE    = regexp.MustCompile(`^[\d.,]+$`)
)

// NormalizeTable cleans a raw header row and data rows into a model.Table:
// each cell is text-normalized and domain-fixed, split fragments are
// re-merged, and trailing empty cells are stripped from data rows.
func NormalizeTable(headers []string, rows [][]string) *model.Table {
	cleanedHeaders := make([]string, len(headers))
	for i, h := range headers {
		cleanedHeaders[i] = cleanCell(h)
	}

	out := &model.Table{
		Headers: MergeFragments(cleanedHeaders),
		Rows:    make([][]string, 0, len(rows)),
	}

	for _, raw := range rows {
		cleaned := make([]string, len(raw))
		for i, c := range raw {
			cleaned[i] = cleanCell(c)
		}
		merged := MergeFragments(cleaned)
		for len(merged) > 0 && merged[len(merged)-1] == "" {
			merged = merged[:len(merged)-1]
		}
		out.Rows = append(out.Rows, merged)
	}

	return out
}

// cleanCell normalizes and domain-fixes one cell's text
func cleanCell(c string) string {
	return strings.TrimSpace(text.FixGluedDomainTerms(text.Normalize(c)))
}

// MergeFragments re-joins cells that extraction spuriously split. The scan
// is a single left-to-right pass; a merged cell stays current, so a
// fragment chain collapses into one cell. Adjacent cells merge when:
//
//   - both are short (current ≤4 chars, next ≤6), unless the current cell
//     is purely numeric — a complete numeric cell is never a fragment head;
//   - the current cell ends in a letter and the next is a short
//     all-lowercase token (a broken word continuation);
//   - the current cell ends with the "%Yo" split artifact and the next
//     starts with the stranded "Y".
func MergeFragments(row []string) []string {
	cells := make([]string, len(row))
	copy(cells, row)

	i := 0
	for i < len(cells)-1 {
		cur, next := cells[i], cells[i+1]
		if shouldMerge(cur, next) {
			merged := strings.TrimSpace(cur + " " + next)
			cells[i] = merged
			cells = append(cells[:i+1], cells[i+2:]...)
			continue
		}
		i++
	}

	return cells
}

// shouldMerge applies the three split-artifact conditions
func shouldMerge(cur, next string) bool {
	if len(cur) <= shortCurrentMax && len(next) <= shortNextMax && !numericCellRE.MatchString(cur) {
		return true
	}
	if endsWithLetterRE.MatchString(cur) && lowercaseTokenRE.MatchString(next) {
		return true
	}
	if strings.HasSuffix(strings.TrimSpace(cur), "%Yo") && strings.HasPrefix(strings.TrimSpace(next), "Y") {
		return true
	}
	return false
}
