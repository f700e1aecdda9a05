package metadata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/text"
)

// MaxNameLength bounds the fund-name candidate; longer lines are
// disclaimers, not titles
const MaxNameLength = 120

var (
	docDateRE = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}`)

	allotmentRE  = regexp.MustCompile(`Date of Allotment\s*[:\-]?\s*([A-Za-z]+\s+\d{1,2},\s+\d{4})`)
	benchmarkRE  = regexp.MustCompile(`Benchmark(?: Index)?\s*[:\-]?\s*([A-Za-z0-9\s\-&]+)`)
	additionalRE = regexp.MustCompile(`Additional Benchmark(?: Index)?\s*[:\-]?\s*([A-Za-z0-9\s\-&]+)`)

	netAUMRE     = regexp.MustCompile("(?i)Net AUM\\s*[:\\-]?\\s*(?:Rs\\.?)?[₹` ]*([\\d,]+\\.?\\d*)\\s*crore")
	monthlyAUMRE = regexp.MustCompile("(?i)Monthly Average AUM\\s*[:\\-]?\\s*(?:Rs\\.?)?[₹` ]*([\\d,]+\\.?\\d*)\\s*crore")

	regularPlanRE = regexp.MustCompile(`(?i)Regular Plan\s*[:\-]?\s*([\d.]+)%`)
	directPlanRE  = regexp.MustCompile(`(?i)Direct Plan\s*[:\-]?\s*([\d.]+)%`)

	managerLineRE = regexp.MustCompile(`(?i)Fund Manager`)
	managerNameRE = regexp.MustCompile(`(?:Fund Manager|Co-? ?Fund Manager)\s*[:\-]?\s*(?:Mr\.|Ms\.|Mrs\.)?\s*([A-Z][A-Za-z.\- ]{2,})`)
	// continuationRE re-extracts from a buffered line pair with only an
	// honorific anchor, for names wrapped onto the next line.
	continuationRE = regexp.MustCompile(`Mr\.?\s*([A-Z][A-Za-z.\- ]{2,})`)

	roleQualifierRE = regexp.MustCompile(`\b(Equity|Debt|Hybrid|Fixed Income)\b`)
	parentheticalRE = regexp.MustCompile(`\([^)]*\)`)
	honorificRE     = regexp.MustCompile(`^(Mr\.|Ms\.|Mrs\.)\s*`)

	lowerUpperRE = regexp.MustCompile(`([a-z])([A-Z])`)
)

// managerState tracks whether a manager line is awaiting a wrapped
// continuation on the next line
type managerState int

const (
	managerIdle managerState = iota
	managerAwaiting
)

// Extract scans the merged page content and returns the fund record plus
// the document date. The date is matched against the raw cover-page text
// rather than the structured stream, since cover mastheads often carry
// the period in decorative spans the assembler drops.
func Extract(pages []*model.Page, coverText string) (model.FundMetadata, string) {
	meta := model.FundMetadata{Managers: []string{}}

	docDate := docDateRE.FindString(coverText)

	seen := make(map[string]bool)
	state := managerIdle
	buffer := ""

	for _, page := range pages {
		for _, item := range page.Content {
			if (item.Kind != model.KindHeading && item.Kind != model.KindParagraph) || item.Text == "" {
				continue
			}
			line := text.Clean(item.Text)
			if text.IsNoise(line) {
				continue
			}

			if meta.Name == "" {
				upper := strings.ToUpper(line)
				if strings.Contains(upper, "FUND") && len(line) < MaxNameLength && !strings.HasPrefix(upper, "JUNE") {
					meta.Name = collapse(lowerUpperRE.ReplaceAllString(line, "$1 $2"))
					continue
				}
			}

			if meta.Name != "" && meta.Category == "" &&
				strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") {
				meta.Category = collapse(text.Clean(strings.TrimSpace(line[1 : len(line)-1])))
				continue
			}

			if meta.DateOfAllotment == "" {
				if m := allotmentRE.FindStringSubmatch(line); m != nil {
					meta.DateOfAllotment = m[1]
				}
			}
			if meta.Benchmark == "" {
				if m := benchmarkRE.FindStringSubmatch(line); m != nil {
					meta.Benchmark = deglue(m[1])
				}
			}
			if meta.AdditionalBenchmark == "" {
				if m := additionalRE.FindStringSubmatch(line); m != nil {
					meta.AdditionalBenchmark = deglue(m[1])
				}
			}
			if meta.AUMCrore == nil {
				meta.AUMCrore = matchAmount(netAUMRE, line)
			}
			if meta.MonthlyAvgAUM == nil {
				meta.MonthlyAvgAUM = matchAmount(monthlyAUMRE, line)
			}
			if meta.ExpenseRatioRegular == nil {
				meta.ExpenseRatioRegular = matchAmount(regularPlanRE, line)
			}
			if meta.ExpenseRatioDirect == nil {
				meta.ExpenseRatioDirect = matchAmount(directPlanRE, line)
			}

			if managerLineRE.MatchString(line) {
				buffer += " " + line
				matches := managerNameRE.FindAllStringSubmatch(buffer, -1)
				for _, m := range matches {
					addManager(&meta, seen, m[1])
				}
				if len(matches) > 0 {
					buffer = ""
					state = managerIdle
				} else {
					// Title line with the name wrapped onto the next
					// line; hold the buffer for a continuation.
					state = managerAwaiting
				}
				continue
			}

			if state == managerAwaiting && strings.HasPrefix(line, "Mr.") {
				buffer += " " + line
				for _, m := range continuationRE.FindAllStringSubmatch(buffer, -1) {
					addManager(&meta, seen, m[1])
				}
				buffer = ""
				state = managerIdle
			}
		}
	}

	return meta, docDate
}

// matchAmount parses the first capture as a float, tolerating digit
// grouping commas. A malformed capture leaves the field unset.
func matchAmount(re *regexp.Regexp, line string) *float64 {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

// addManager cleans a captured manager name and appends it if unseen
func addManager(meta *model.FundMetadata, seen map[string]bool, raw string) {
	name := roleQualifierRE.ReplaceAllString(raw, "")
	name = parentheticalRE.ReplaceAllString(name, "")
	name = collapse(name)
	name = honorificRE.ReplaceAllString(name, "")
	if name == "" || seen[name] {
		return
	}
	seen[name] = true
	meta.Managers = append(meta.Managers, name)
}

// deglue splits lower→upper transitions in a captured value and
// collapses whitespace
func deglue(s string) string {
	return collapse(lowerUpperRE.ReplaceAllString(s, "$1 $2"))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
