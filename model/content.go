package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ContentKind represents the type of a page content item
type ContentKind int

const (
	KindUnknown ContentKind = iota
	KindHeading
	KindParagraph
	KindTable
	KindChart
)

func (k ContentKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindChart:
		return "chart"
	default:
		return "unknown"
	}
}

// OrderClass returns the primary sort rank used when establishing reading
// order: headings first, then paragraphs, tables, and chart placeholders.
func (k ContentKind) OrderClass() int {
	switch k {
	case KindHeading:
		return 0
	case KindParagraph:
		return 1
	case KindTable:
		return 2
	case KindChart:
		return 3
	default:
		return 4
	}
}

// MarshalJSON encodes the kind as its string name
func (k ContentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name
func (k *ContentKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "heading":
		*k = KindHeading
	case "paragraph":
		*k = KindParagraph
	case "table":
		*k = KindTable
	case "chart":
		*k = KindChart
	default:
		return fmt.Errorf("unknown content kind %q", s)
	}
	return nil
}

// ContentItem is a single unit of page content. Exactly one of Text/Table is
// meaningfully populated, matching Kind. Section and SubSection carry the
// most recent heading(s) seen on the page. BBox is used only for ordering;
// merged table items have none and sort after all positioned items.
type ContentItem struct {
	Kind       ContentKind       `json:"type"`
	Section    string            `json:"section,omitempty"`
	SubSection string            `json:"sub_section,omitempty"`
	Text       string            `json:"text,omitempty"`
	Table      *Table            `json:"table,omitempty"`
	BBox       *BBox             `json:"bbox,omitempty"`
	Meta       map[string]string `json:"meta,omitempty"`
}

// positionlessY is the sentinel vertical position for items without a
// bounding box, sorting them after all positioned items of the same class.
const positionlessY = 1e9

// SortY returns the vertical position used as the secondary ordering key
func (c ContentItem) SortY() float64 {
	if c.BBox == nil {
		return positionlessY
	}
	return c.BBox.Top
}

// Table holds normalized tabular data. Rows need not have uniform length
// with Headers; upstream extraction imperfection is tolerated, not enforced.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of header columns
func (t *Table) ColCount() int {
	return len(t.Headers)
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, h := range t.Headers {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(h, "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for range t.Headers {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for _, row := range t.Rows {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	writeRow := func(row []string) {
		for j, cell := range row {
			if strings.ContainsAny(cell, ",\"\n") {
				cell = "\"" + strings.ReplaceAll(cell, "\"", "\"\"") + "\""
			}
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	if len(t.Headers) > 0 {
		writeRow(t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(row)
	}
	return sb.String()
}
