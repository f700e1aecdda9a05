package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/text"
)

// DefaultSplitThreshold is the cleaned-text length above which a body run
// is split into sentence-like paragraph items.
const DefaultSplitThreshold = 600

// ChartPlaceholderText is the fixed text of chart placeholder items
const ChartPlaceholderText = "Chart/graph detected"

// Assembler turns a page's positioned blocks into typed content items in
// reading order. One Assemble call per page; all section state is local to
// the call, so a single Assembler is safe to reuse across pages.
type Assembler struct {
	classifier     *HeadingClassifier
	splitThreshold int
}

// NewAssembler creates an assembler with default classification and
// paragraph-splitting settings
func NewAssembler() *Assembler {
	return &Assembler{
		classifier:     NewHeadingClassifier(),
		splitThreshold: DefaultSplitThreshold,
	}
}

// NewAssemblerWithConfig creates an assembler with a custom heading
// classifier and split threshold
func NewAssemblerWithConfig(classifier *HeadingClassifier, splitThreshold int) *Assembler {
	if classifier == nil {
		classifier = NewHeadingClassifier()
	}
	if splitThreshold <= 0 {
		splitThreshold = DefaultSplitThreshold
	}
	return &Assembler{classifier: classifier, splitThreshold: splitThreshold}
}

// pageState is the accumulator threaded through one page's assembly:
// the open section and sub-section, and the items emitted so far.
type pageState struct {
	section string
	sub     string
	items   []model.ContentItem
}

// Assemble walks the page's blocks in reading order and emits heading,
// paragraph and chart items. Table interleaving and the final sort happen
// later, in Merge.
func (a *Assembler) Assemble(page model.PageInput) []model.ContentItem {
	blocks := make([]model.Block, len(page.Blocks))
	copy(blocks, page.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].BBox.Top != blocks[j].BBox.Top {
			return blocks[i].BBox.Top < blocks[j].BBox.Top
		}
		return blocks[i].BBox.Left < blocks[j].BBox.Left
	})

	st := &pageState{}

	for _, block := range blocks {
		labeled := a.classifier.LabelSpans(block)
		bbox := block.BBox

		var runLabel SpanLabel
		var runText []string
		started := false
		for _, ls := range labeled {
			switch {
			case !started:
				runLabel = ls.Label
				runText = []string{ls.Text}
				started = true
			case ls.Label != runLabel:
				a.push(st, runLabel == LabelHeading, strings.Join(runText, " "), bbox)
				runLabel = ls.Label
				runText = []string{ls.Text}
			default:
				runText = append(runText, ls.Text)
			}
		}
		if started {
			a.push(st, runLabel == LabelHeading, strings.Join(runText, " "), bbox)
		}
	}

	// Chart placeholders carry the section state left open at the end of
	// the page. Image enumeration failures upstream yield Images == 0.
	for i := 0; i < page.Images; i++ {
		st.items = append(st.items, model.ContentItem{
			Kind:       model.KindChart,
			Section:    st.section,
			SubSection: st.sub,
			Text:       ChartPlaceholderText,
			BBox:       &model.BBox{},
			Meta:       map[string]string{"note": "placeholder for chart"},
		})
	}

	return st.items
}

// push cleans and emits one flushed run as a heading or body item
func (a *Assembler) push(st *pageState, asHeading bool, raw string, bbox model.BBox) {
	txt := text.FixGluedDomainTerms(text.Normalize(raw))
	if txt == "" || text.IsNoise(txt) {
		return
	}

	if asHeading {
		if st.section == "" {
			st.section = txt
			st.items = append(st.items, model.ContentItem{
				Kind:    model.KindHeading,
				Section: st.section,
				Text:    txt,
				BBox:    &model.BBox{Left: bbox.Left, Top: bbox.Top, Right: bbox.Right, Bottom: bbox.Bottom},
			})
		} else {
			st.sub = txt
			st.items = append(st.items, model.ContentItem{
				Kind:       model.KindHeading,
				Section:    st.section,
				SubSection: st.sub,
				Text:       txt,
				BBox:       &model.BBox{Left: bbox.Left, Top: bbox.Top, Right: bbox.Right, Bottom: bbox.Bottom},
			})
		}
		return
	}

	parts := []string{txt}
	if len(txt) > a.splitThreshold {
		parts = splitSentences(txt)
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st.items = append(st.items, model.ContentItem{
			Kind:       model.KindParagraph,
			Section:    st.section,
			SubSection: st.sub,
			Text:       part,
			BBox:       &model.BBox{Left: bbox.Left, Top: bbox.Top, Right: bbox.Right, Bottom: bbox.Bottom},
		})
	}
}

// sentenceBoundaryRE marks an end-of-sentence punctuation mark followed by
// whitespace and a capital letter. The punctuation stays with the left
// part, the capital starts the next.
var sentenceBoundaryRE = regexp.MustCompile(`[.!?]\s+[A-Z]`)

// splitSentences splits long body text at sentence-like boundaries
func splitSentences(s string) []string {
	locs := sentenceBoundaryRE.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return []string{s}
	}

	var parts []string
	start := 0
	for _, loc := range locs {
		cut := loc[0] + 1  // after the punctuation mark
		next := loc[1] - 1 // at the capital letter
		parts = append(parts, s[start:cut])
		start = next
	}
	parts = append(parts, s[start:])
	return parts
}
