package reader

import (
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/tables"
)

// fragment is one positioned text chunk from the content stream, with
// the vertical coordinate already flipped to top-left origin
type fragment struct {
	text string
	size float64
	x    float64
	w    float64
	top  float64
}

type lineGroup struct {
	top   float64
	frags []fragment
}

// decompose turns the page's raw text chunks into layout blocks for the
// assembler and word runs for table detection. Chunks are sorted into
// reading order, clustered into lines by vertical position, lines into
// blocks by vertical gaps.
func decompose(texts []pdflib.Text, pageHeight float64, cfg Config) ([]model.Block, []tables.TextRun) {
	frags := make([]fragment, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		frags = append(frags, fragment{
			text: t.S,
			size: t.FontSize,
			x:    t.X,
			w:    t.W,
			top:  pageHeight - t.Y,
		})
	}
	if len(frags) == 0 {
		return nil, nil
	}

	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].top != frags[j].top {
			return frags[i].top < frags[j].top
		}
		return frags[i].x < frags[j].x
	})

	lines := groupLines(frags, cfg.LineTolerance)
	return buildBlocks(lines, cfg), buildRuns(lines, cfg)
}

// groupLines clusters fragments sharing a vertical position, each line
// sorted left to right
func groupLines(frags []fragment, tolerance float64) []lineGroup {
	var lines []lineGroup
	cur := lineGroup{top: frags[0].top, frags: []fragment{frags[0]}}
	for _, f := range frags[1:] {
		if f.top-cur.top <= tolerance {
			cur.frags = append(cur.frags, f)
			continue
		}
		lines = append(lines, sortLine(cur))
		cur = lineGroup{top: f.top, frags: []fragment{f}}
	}
	lines = append(lines, sortLine(cur))
	return lines
}

func sortLine(ln lineGroup) lineGroup {
	sort.SliceStable(ln.frags, func(i, j int) bool { return ln.frags[i].x < ln.frags[j].x })
	return ln
}

// buildBlocks groups consecutive lines into blocks, breaking on vertical
// gaps wider than the configured block gap
func buildBlocks(lines []lineGroup, cfg Config) []model.Block {
	var blocks []model.Block
	var group []lineGroup
	for i, ln := range lines {
		if i > 0 && ln.top-lines[i-1].top > cfg.BlockGap {
			blocks = append(blocks, makeBlock(group, cfg))
			group = nil
		}
		group = append(group, ln)
	}
	if len(group) > 0 {
		blocks = append(blocks, makeBlock(group, cfg))
	}
	return blocks
}

func makeBlock(group []lineGroup, cfg Config) model.Block {
	block := model.Block{Lines: make([]model.Line, 0, len(group))}

	left, right := group[0].frags[0].x, 0.0
	bottom := 0.0
	for _, ln := range group {
		block.Lines = append(block.Lines, model.Line{Spans: mergeSpans(ln.frags, cfg)})
		maxSize := 0.0
		for _, f := range ln.frags {
			if f.x < left {
				left = f.x
			}
			if end := f.x + f.w; end > right {
				right = end
			}
			if f.size > maxSize {
				maxSize = f.size
			}
		}
		if b := ln.top + maxSize; b > bottom {
			bottom = b
		}
	}
	block.BBox = model.NewBBox(left, group[0].top, right, bottom)
	return block
}

// mergeSpans joins a line's fragments into spans, starting a new span at
// every font-size change. Fragments separated by more than the word-gap
// threshold get a space; abutting fragments are glyph runs of one word
// and join directly.
func mergeSpans(frags []fragment, cfg Config) []model.Span {
	var spans []model.Span
	var b strings.Builder

	size := frags[0].size
	end := frags[0].x + frags[0].w
	b.WriteString(frags[0].text)

	for _, f := range frags[1:] {
		if f.size != size {
			spans = append(spans, model.Span{Text: b.String(), Size: size})
			b.Reset()
			size = f.size
		} else if f.x-end > wordGap(size, cfg) {
			b.WriteString(" ")
		}
		b.WriteString(f.text)
		end = f.x + f.w
	}
	spans = append(spans, model.Span{Text: b.String(), Size: size})
	return spans
}

// buildRuns joins each line's fragments into word runs for table
// detection, splitting at gaps wider than one em so that cells stay
// separate while multi-word cell text stays together
func buildRuns(lines []lineGroup, cfg Config) []tables.TextRun {
	var runs []tables.TextRun
	for _, ln := range lines {
		var b strings.Builder
		f0 := ln.frags[0]
		start, end, size := f0.x, f0.x+f0.w, f0.size
		b.WriteString(f0.text)

		flush := func() {
			runs = append(runs, tables.TextRun{
				Text: b.String(), X: start, Y: ln.top, W: end - start, H: size,
			})
			b.Reset()
		}
		for _, f := range ln.frags[1:] {
			split := f.size
			if size > split {
				split = size
			}
			if f.x-end > split {
				flush()
				start, size = f.x, f.size
			} else {
				if f.x-end > wordGap(f.size, cfg) {
					b.WriteString(" ")
				}
				if f.size > size {
					size = f.size
				}
			}
			b.WriteString(f.text)
			end = f.x + f.w
		}
		flush()
	}
	return runs
}

func wordGap(size float64, cfg Config) float64 {
	gap := size * 0.2
	if gap < cfg.MinWordGap {
		gap = cfg.MinWordGap
	}
	return gap
}
