package model

import "sort"

// Span is a contiguous run of text sharing one font size within a line,
// as reported by the layout collaborator.
type Span struct {
	Text string
	Size float64
}

// Line is a horizontal group of spans within a block
type Line struct {
	Spans []Span
}

// Block is a positioned group of lines on a page
type Block struct {
	BBox  BBox
	Lines []Line
}

// PageInput is the raw material for one page as handed over by the PDF
// reader: positioned text blocks, the number of embedded images, and the
// whole-page plain text (consumed for the cover page only).
type PageInput struct {
	Number  int // 1-indexed
	Width   float64
	Height  float64
	Blocks  []Block
	Images  int
	RawText string
}

// Page is a single page of the output record
type Page struct {
	PageNumber int           `json:"page_number"`
	Content    []ContentItem `json:"content"`
}

// SortContent establishes the total reading order for the page: primary
// order class (heading, paragraph, table, chart), secondary vertical
// position with positionless items last within their class. The sort is
// stable, so items with identical keys keep their original relative order.
func (p *Page) SortContent() {
	sort.SliceStable(p.Content, func(i, j int) bool {
		ci, cj := p.Content[i], p.Content[j]
		if ci.Kind.OrderClass() != cj.Kind.OrderClass() {
			return ci.Kind.OrderClass() < cj.Kind.OrderClass()
		}
		return ci.SortY() < cj.SortY()
	})
}

// Headings returns the page's heading items in order
func (p *Page) Headings() []ContentItem {
	var out []ContentItem
	for _, c := range p.Content {
		if c.Kind == KindHeading {
			out = append(out, c)
		}
	}
	return out
}

// Tables returns the page's table items in order
func (p *Page) Tables() []*Table {
	var out []*Table
	for _, c := range p.Content {
		if c.Kind == KindTable && c.Table != nil {
			out = append(out, c.Table)
		}
	}
	return out
}
