package layout

import (
	"strings"
	"unicode"

	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/text"
)

// SpanLabel is the classification of a single span
type SpanLabel int

const (
	LabelBody SpanLabel = iota
	LabelHeading
)

func (l SpanLabel) String() string {
	if l == LabelHeading {
		return "heading"
	}
	return "body"
}

// DefaultHeadingThreshold is the font size at or above which a span is
// labeled a heading, in the span's size unit.
const DefaultHeadingThreshold = 11.0

// MaxHeadingWords is the word limit for the all-caps heading rule
const MaxHeadingWords = 6

// HeadingClassifier labels spans as heading or body text. Classification is
// purely per-span: a span is a heading if its font size reaches the
// threshold, or its cleaned text is entirely upper-case with at most
// MaxHeadingWords words.
type HeadingClassifier struct {
	Threshold float64
}

// NewHeadingClassifier creates a classifier with the default threshold
func NewHeadingClassifier() *HeadingClassifier {
	return &HeadingClassifier{Threshold: DefaultHeadingThreshold}
}

// LabeledSpan is a span with its cleaned text and classification
type LabeledSpan struct {
	Label SpanLabel
	Text  string
}

// Classify labels a single span. The span's text is cleaned before the
// all-caps rule is applied.
func (c *HeadingClassifier) Classify(span model.Span) SpanLabel {
	cleaned := text.Normalize(span.Text)
	if span.Size >= c.Threshold {
		return LabelHeading
	}
	if isAllUpper(cleaned) && len(strings.Fields(cleaned)) <= MaxHeadingWords {
		return LabelHeading
	}
	return LabelBody
}

// LabelSpans classifies every non-empty span in a block, in line order
func (c *HeadingClassifier) LabelSpans(block model.Block) []LabeledSpan {
	var labeled []LabeledSpan
	for _, line := range block.Lines {
		for _, span := range line.Spans {
			cleaned := text.Normalize(span.Text)
			if cleaned == "" {
				continue
			}
			labeled = append(labeled, LabeledSpan{Label: c.Classify(span), Text: cleaned})
		}
	}
	return labeled
}

// isAllUpper reports whether s contains at least one cased letter and no
// lower-case letters
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
