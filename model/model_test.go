package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBBoxJSONRoundTrip(t *testing.T) {
	box := NewBBox(10, 20, 110, 45)

	data, err := json.Marshal(box)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[10,20,110,45]" {
		t.Errorf("encoded form = %s", data)
	}

	var back BBox
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != box {
		t.Errorf("round trip: got %+v, want %+v", back, box)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(10, 10, 50, 30)
	b := NewBBox(40, 5, 80, 25)

	got := a.Union(b)
	want := NewBBox(10, 5, 80, 30)
	if got != want {
		t.Errorf("union = %+v, want %+v", got, want)
	}
}

func TestContentKindJSON(t *testing.T) {
	item := ContentItem{Kind: KindHeading, Text: "OVERVIEW"}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"heading"`) {
		t.Errorf("encoded form = %s", data)
	}

	var back ContentItem
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Kind != KindHeading {
		t.Errorf("kind = %v", back.Kind)
	}

	var bad ContentItem
	if err := json.Unmarshal([]byte(`{"type":"sidebar"}`), &bad); err == nil {
		t.Error("expected an error for an unknown kind name")
	}
}

func TestSortContent(t *testing.T) {
	page := &Page{
		Content: []ContentItem{
			{Kind: KindTable, Table: &Table{}},
			{Kind: KindParagraph, Text: "second", BBox: &BBox{Top: 20}},
			{Kind: KindChart, Text: "Chart/graph detected", BBox: &BBox{}},
			{Kind: KindParagraph, Text: "first", BBox: &BBox{Top: 15}},
			{Kind: KindHeading, Text: "TITLE", BBox: &BBox{Top: 10}},
		},
	}

	page.SortContent()

	kinds := make([]ContentKind, len(page.Content))
	for i, c := range page.Content {
		kinds[i] = c.Kind
	}
	want := []ContentKind{KindHeading, KindParagraph, KindParagraph, KindTable, KindChart}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("order = %v, want %v", kinds, want)
		}
	}
	if page.Content[1].Text != "first" || page.Content[2].Text != "second" {
		t.Errorf("paragraphs not ordered by position: %q, %q", page.Content[1].Text, page.Content[2].Text)
	}
}

func TestSortYSentinel(t *testing.T) {
	positioned := ContentItem{Kind: KindParagraph, BBox: &BBox{Top: 700}}
	positionless := ContentItem{Kind: KindParagraph}
	if positioned.SortY() >= positionless.SortY() {
		t.Error("positionless items must sort after positioned ones")
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument("june.pdf")
	doc.AddPage(&Page{})
	doc.AddPage(&Page{})

	if doc.PageCount() != 2 {
		t.Fatalf("page count = %d", doc.PageCount())
	}
	if doc.GetPage(1).PageNumber != 1 || doc.GetPage(2).PageNumber != 2 {
		t.Error("pages not numbered sequentially")
	}
	if doc.GetPage(0) != nil || doc.GetPage(3) != nil {
		t.Error("out-of-range page lookup should return nil")
	}
}

func TestTableExports(t *testing.T) {
	tbl := &Table{
		Headers: []string{"Scheme", "1Y"},
		Rows:    [][]string{{"Alpha, Growth", "12.5"}},
	}

	if tbl.RowCount() != 1 || tbl.ColCount() != 2 {
		t.Errorf("counts = %d, %d", tbl.RowCount(), tbl.ColCount())
	}

	md := tbl.ToMarkdown()
	if !strings.Contains(md, "| Scheme ") || !strings.Contains(md, "|---|---|") {
		t.Errorf("markdown = %q", md)
	}

	csv := tbl.ToCSV()
	if !strings.Contains(csv, `"Alpha, Growth",12.5`) {
		t.Errorf("csv = %q", csv)
	}
}

func TestDocumentJSONShape(t *testing.T) {
	aum := 1234.5
	doc := NewDocument("june.pdf")
	doc.DocDate = "June 2024"
	doc.Fund = FundMetadata{Name: "Alpha Fund", AUMCrore: &aum, Managers: []string{"John Smith"}}
	doc.AddPage(&Page{Content: []ContentItem{{Kind: KindHeading, Text: "ALPHA FUND"}}})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{
		`"file_name":"june.pdf"`,
		`"doc_date":"June 2024"`,
		`"aum_crore":1234.5`,
		`"managers":["John Smith"]`,
		`"page_number":1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %s: %s", want, data)
		}
	}
}
