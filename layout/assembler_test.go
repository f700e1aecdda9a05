package layout

import (
	"strings"
	"testing"

	"github.com/fundlens/factsheet/model"
)

func block(top, left float64, spans ...model.Span) model.Block {
	return model.Block{
		BBox:  model.BBox{Left: left, Top: top, Right: left + 100, Bottom: top + 12},
		Lines: []model.Line{{Spans: spans}},
	}
}

func TestAssembleSectionState(t *testing.T) {
	a := NewAssembler()
	page := model.PageInput{
		Number: 1,
		Blocks: []model.Block{
			block(10, 0, model.Span{Text: "Fund Overview", Size: 14}),
			block(30, 0, model.Span{Text: "The scheme invests in equities.", Size: 9}),
			block(50, 0, model.Span{Text: "Performance Review", Size: 14}),
			block(70, 0, model.Span{Text: "Returns were strong.", Size: 9}),
		},
	}

	items := a.Assemble(page)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d: %+v", len(items), items)
	}

	if items[0].Kind != model.KindHeading || items[0].Section != "Fund Overview" || items[0].SubSection != "" {
		t.Errorf("first heading wrong: %+v", items[0])
	}
	if items[1].Kind != model.KindParagraph || items[1].Section != "Fund Overview" || items[1].SubSection != "" {
		t.Errorf("first paragraph wrong: %+v", items[1])
	}
	// A second heading nests under the open section as a sub-section.
	if items[2].Kind != model.KindHeading || items[2].Section != "Fund Overview" || items[2].SubSection != "Performance Review" {
		t.Errorf("sub-section heading wrong: %+v", items[2])
	}
	if items[3].Section != "Fund Overview" || items[3].SubSection != "Performance Review" {
		t.Errorf("second paragraph did not inherit sub-section: %+v", items[3])
	}
}

func TestAssembleReadingOrderByPosition(t *testing.T) {
	// Blocks arrive out of order; assembly sorts by (top, left).
	a := NewAssembler()
	page := model.PageInput{
		Blocks: []model.Block{
			block(80, 0, model.Span{Text: "second paragraph", Size: 9}),
			block(10, 0, model.Span{Text: "TITLE", Size: 9}),
			block(40, 0, model.Span{Text: "first paragraph", Size: 9}),
		},
	}

	items := a.Assemble(page)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Text != "TITLE" || items[1].Text != "first paragraph" || items[2].Text != "second paragraph" {
		t.Errorf("wrong assembly order: %q, %q, %q", items[0].Text, items[1].Text, items[2].Text)
	}
}

func TestAssembleRunGrouping(t *testing.T) {
	// Consecutive same-label spans merge into one push; a label change
	// flushes the prior run.
	a := NewAssembler()
	page := model.PageInput{
		Blocks: []model.Block{
			{
				BBox: model.BBox{Left: 0, Top: 10, Right: 200, Bottom: 40},
				Lines: []model.Line{
					{Spans: []model.Span{
						{Text: "EQUITY", Size: 12},
						{Text: "FUND", Size: 12},
						{Text: "invests in large caps.", Size: 9},
						{Text: "Low churn.", Size: 9},
					}},
				},
			},
		},
	}

	items := a.Assemble(page)
	if len(items) != 2 {
		t.Fatalf("expected 2 items (one heading run, one body run), got %d: %+v", len(items), items)
	}
	if items[0].Kind != model.KindHeading || items[0].Text != "EQUITY FUND" {
		t.Errorf("heading run wrong: %+v", items[0])
	}
	if items[1].Kind != model.KindParagraph || items[1].Text != "invests in large caps. Low churn." {
		t.Errorf("body run wrong: %+v", items[1])
	}
}

func TestAssembleDropsNoise(t *testing.T) {
	a := NewAssembler()
	page := model.PageInput{
		Blocks: []model.Block{
			block(10, 0, model.Span{Text: "Page 3", Size: 9}),
			block(20, 0, model.Span{Text: "Mutual Fund investments are subject to market risks", Size: 9}),
			block(30, 0, model.Span{Text: "real content", Size: 9}),
		},
	}

	items := a.Assemble(page)
	if len(items) != 1 || items[0].Text != "real content" {
		t.Errorf("expected noise dropped, got %+v", items)
	}
}

func TestAssembleLongParagraphSplit(t *testing.T) {
	// A 650-character run with two sentence boundaries followed by capitals
	// splits into exactly three paragraph items.
	s1 := strings.Repeat("a", 214) + "."
	s2 := "B" + strings.Repeat("b", 213) + "!"
	s3 := "C" + strings.Repeat("c", 216) + "."
	long := s1 + " " + s2 + " " + s3
	if len(long) != 650 {
		t.Fatalf("test input length = %d, want 650", len(long))
	}

	a := NewAssembler()
	page := model.PageInput{
		Blocks: []model.Block{block(10, 0, model.Span{Text: long, Size: 9})},
	}

	items := a.Assemble(page)
	if len(items) != 3 {
		t.Fatalf("expected 3 paragraph items, got %d", len(items))
	}
	total := 0
	for _, it := range items {
		if it.Kind != model.KindParagraph {
			t.Errorf("item kind = %s, want paragraph", it.Kind)
		}
		total += len(it.Text)
	}
	// Splitting never grows the text beyond the original plus separators.
	if total > len(long) {
		t.Errorf("combined split length %d exceeds original %d", total, len(long))
	}
}

func TestAssembleChartPlaceholders(t *testing.T) {
	a := NewAssembler()
	page := model.PageInput{
		Blocks: []model.Block{
			block(10, 0, model.Span{Text: "HOLDINGS", Size: 12}),
		},
		Images: 2,
	}

	items := a.Assemble(page)
	if len(items) != 3 {
		t.Fatalf("expected heading + 2 chart items, got %d", len(items))
	}
	for _, it := range items[1:] {
		if it.Kind != model.KindChart {
			t.Errorf("item kind = %s, want chart", it.Kind)
		}
		if it.Text != ChartPlaceholderText {
			t.Errorf("chart text = %q", it.Text)
		}
		if it.Section != "HOLDINGS" {
			t.Errorf("chart did not carry section: %+v", it)
		}
		if it.BBox == nil || !it.BBox.IsZero() {
			t.Errorf("chart bbox should be zero, got %+v", it.BBox)
		}
		if it.Meta["note"] != "placeholder for chart" {
			t.Errorf("chart meta wrong: %+v", it.Meta)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no boundary", "all one piece", []string{"all one piece"}},
		{"two sentences", "First one. Second one.", []string{"First one.", "Second one."}},
		{"lowercase continuation kept", "e.g. some term. Next part", []string{"e.g. some term.", "Next part"}},
		{"question and exclamation", "Really? Yes! Done.", []string{"Really?", "Yes!", "Done."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitSentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if strings.TrimSpace(got[i]) != strings.TrimSpace(tt.want[i]) {
					t.Errorf("part %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
