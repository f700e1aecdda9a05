package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	specialSpaceRE = regexp.MustCompile("[\u00A0\u2007\u202F]")
	hyphenBreakRE  = regexp.MustCompile(`(\w)-\s+(\w)`)
	whitespaceRE   = regexp.MustCompile(`\s+`)
	lowerUpperRE   = regexp.MustCompile(`([a-z])([A-Z])`)
	letterDigitRE  = regexp.MustCompile(`([A-Za-z])(\d)`)
	digitLetterRE  = regexp.MustCompile(`(\d)([A-Za-z])`)
)

// Normalize cleans a raw text fragment: tabs and non-breaking spaces become
// ordinary spaces, words broken across a line wrap are rejoined, whitespace
// runs collapse to a single space, and spaces are inserted at lower→upper,
// letter→digit and digit→letter transitions. The transform is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// PDF extractors frequently emit decomposed accents.
	s = norm.NFC.String(s)

	s = strings.ReplaceAll(s, "\t", " ")
	s = specialSpaceRE.ReplaceAllString(s, " ")

	s = hyphenBreakRE.ReplaceAllString(s, "$1$2")

	s = whitespaceRE.ReplaceAllString(s, " ")

	s = lowerUpperRE.ReplaceAllString(s, "$1 $2")
	s = letterDigitRE.ReplaceAllString(s, "$1 $2")
	s = digitLetterRE.ReplaceAllString(s, "$1 $2")

	return strings.TrimSpace(s)
}

// domainFix is one case-insensitive substitution for a known glued phrase
type domainFix struct {
	pattern *regexp.Regexp
	replace string
}

var domainFixes = []domainFix{
	{regexp.MustCompile(`(?i)\bopenended\b`), "open ended"},
	{regexp.MustCompile(`(?i)\bendedequity\b`), "ended equity"},
	{regexp.MustCompile(`(?i)\bequityscheme\b`), "equity scheme"},
	{regexp.MustCompile(`(?i)\bschemeinvesting\b`), "scheme investing"},
	{regexp.MustCompile(`(?i)\binvestingin\b`), "investing in"},
	{regexp.MustCompile(`(?i)\binmaximum\b`), "in maximum"},
	{regexp.MustCompile(`(?i)\bmulticapstocks\b`), "multicap stocks"},
	{regexp.MustCompile(`(?i)\bmutualfundinvestmentsaresubjecttomarketrisks\b`), "Mutual Fund investments are subject to market risks"},
	{regexp.MustCompile(`(?i)\breadallschemerelateddocumentscarefully\b`), "read all scheme related documents carefully"},
}

// FixGluedDomainTerms applies the fixed table of substitutions for domain
// phrases the generic de-gluing heuristics miss, including expansion of the
// two regulatory boilerplate phrases to their canonical spelled-out form.
func FixGluedDomainTerms(s string) string {
	if s == "" {
		return s
	}
	for _, fix := range domainFixes {
		s = fix.pattern.ReplaceAllString(s, fix.replace)
	}
	return s
}

// Clean runs Normalize followed by FixGluedDomainTerms
func Clean(s string) string {
	return FixGluedDomainTerms(Normalize(s))
}

var (
	nonAlphaRE   = regexp.MustCompile(`[^A-Za-z]`)
	pageOnlyRE   = regexp.MustCompile(`(?i)^\s*Page\s*\|?\s*\d+\s*$`)
	pageNumberRE = regexp.MustCompile(`(?i)Page\s*\d+`)
)

// Boilerplate phrases matched against the alphabetic-only lowercase
// projection of the text, so whitespace and case variation cannot hide them.
var noisePhrases = []string{
	"mutualfundinvestmentsaresubjecttomarketrisks",
	"readallschemerelateddocumentscarefully",
}

// IsNoise reports whether a line is regulatory boilerplate or a page-number
// artifact. Noise lines are dropped by the assembler, never stored.
func IsNoise(s string) bool {
	if s == "" {
		return false
	}
	compact := strings.ToLower(nonAlphaRE.ReplaceAllString(s, ""))
	for _, phrase := range noisePhrases {
		if strings.Contains(compact, phrase) {
			return true
		}
	}
	if pageOnlyRE.MatchString(s) {
		return true
	}
	return pageNumberRE.MatchString(s)
}
