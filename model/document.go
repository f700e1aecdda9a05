package model

// FundMetadata is the flat metadata summary derived from the assembled
// content stream. Scalar fields are set at most once (first successful
// match wins); Managers accumulates across matches in insertion order
// with exact-string duplicates excluded.
type FundMetadata struct {
	Name                string   `json:"name,omitempty"`
	Category            string   `json:"category,omitempty"`
	AUMCrore            *float64 `json:"aum_crore,omitempty"`
	MonthlyAvgAUM       *float64 `json:"monthly_avg_aum,omitempty"`
	ExpenseRatioRegular *float64 `json:"expense_ratio_regular,omitempty"`
	ExpenseRatioDirect  *float64 `json:"expense_ratio_direct,omitempty"`
	Benchmark           string   `json:"benchmark,omitempty"`
	AdditionalBenchmark string   `json:"additional_benchmark,omitempty"`
	DateOfAllotment     string   `json:"date_of_allotment,omitempty"`
	Managers            []string `json:"managers"`
}

// Document is the complete structured record for one parsed factsheet.
// It is owned and constructed once per parse invocation and marshals
// directly to the final JSON output.
type Document struct {
	FileName string       `json:"file_name"`
	DocDate  string       `json:"doc_date,omitempty"`
	Fund     FundMetadata `json:"fund"`
	Pages    []*Page      `json:"pages"`
}

// NewDocument creates a new empty document
func NewDocument(fileName string) *Document {
	return &Document{
		FileName: fileName,
		Pages:    make([]*Page, 0),
	}
}

// AddPage adds a page to the document, numbering it sequentially
func (d *Document) AddPage(page *Page) {
	page.PageNumber = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// AllTables returns all table items from all pages
func (d *Document) AllTables() []*Table {
	var tables []*Table
	for _, page := range d.Pages {
		tables = append(tables, page.Tables()...)
	}
	return tables
}

// AllHeadings returns all heading items across all pages
func (d *Document) AllHeadings() []ContentItem {
	var headings []ContentItem
	for _, page := range d.Pages {
		headings = append(headings, page.Headings()...)
	}
	return headings
}
