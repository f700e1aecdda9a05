package reader

import (
	"fmt"
	"io"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/tables"
)

// Default page dimensions (US Letter in points) used when a page carries
// no resolvable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Config holds configuration for page decomposition
type Config struct {
	// LineTolerance groups text fragments into the same line when their
	// top edges are within this distance
	LineTolerance float64

	// BlockGap starts a new block when the vertical gap between
	// consecutive lines exceeds this distance
	BlockGap float64

	// MinWordGap is the floor for the gap that separates two fragments
	// into distinct words; the effective threshold scales with font size
	MinWordGap float64

	// RuleThickness is the maximum extent of a rectangle's short side
	// for it to count as a ruling line rather than a filled box
	RuleThickness float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance: 2.0,
		BlockGap:      12.0,
		MinWordGap:    1.0,
		RuleThickness: 2.0,
	}
}

// Reader reads a factsheet PDF page by page
type Reader struct {
	pdf    *pdflib.Reader
	file   *os.File // nil when constructed from an io.ReaderAt
	config Config
}

// PageData is the decomposed form of one page: the layout input for the
// assembler and the geometry input for table detection.
type PageData struct {
	Input    model.PageInput
	Geometry tables.PageGeometry
}

// Open opens a PDF file and returns a Reader. The pdf library panics on
// some malformed inputs; those surface here as errors.
func Open(path string) (rd *Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			rd, err = nil, fmt.Errorf("open pdf %s: malformed document: %v", path, r)
		}
	}()

	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Reader{pdf: r, file: f, config: DefaultConfig()}, nil
}

// NewReader creates a Reader from an io.ReaderAt, e.g. an upload held in
// memory
func NewReader(ra io.ReaderAt, size int64) (rd *Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			rd, err = nil, fmt.Errorf("read pdf: malformed document: %v", r)
		}
	}()

	r, err := pdflib.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return &Reader{pdf: r, config: DefaultConfig()}, nil
}

// SetConfig replaces the decomposition configuration
func (r *Reader) SetConfig(config Config) {
	r.config = config
}

// Close closes the underlying file, if the Reader owns one
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// ReadPage decomposes one page. Page numbers are 1-based. A page that is
// missing from the page tree yields empty inputs rather than an error.
func (r *Reader) ReadPage(num int) (*PageData, error) {
	page := r.pdf.Page(num)
	if page.V.IsNull() {
		return &PageData{
			Input:    model.PageInput{Number: num, Width: defaultPageWidth, Height: defaultPageHeight},
			Geometry: tables.PageGeometry{Width: defaultPageWidth, Height: defaultPageHeight},
		}, nil
	}

	width, height := pageSize(page)

	content, err := pageContent(page)
	if err != nil {
		return nil, fmt.Errorf("read page %d content: %w", num, err)
	}

	blocks, runs := decompose(content.Text, height, r.config)

	input := model.PageInput{
		Number: num,
		Width:  width,
		Height: height,
		Blocks: blocks,
		Images: countImages(page),
	}
	// Raw text is consumed for the cover page's document date; a text
	// extraction failure there degrades to "no date", not a parse error.
	if num == 1 {
		if raw, err := page.GetPlainText(nil); err == nil {
			input.RawText = raw
		}
	}

	geom := tables.PageGeometry{
		Width:  width,
		Height: height,
		Runs:   runs,
		Rules:  pageRules(content.Rect, height, r.config.RuleThickness),
	}

	return &PageData{Input: input, Geometry: geom}, nil
}

// ReadAll decomposes every page in order
func (r *Reader) ReadAll() ([]*PageData, error) {
	out := make([]*PageData, 0, r.pdf.NumPage())
	for i := 1; i <= r.pdf.NumPage(); i++ {
		pd, err := r.ReadPage(i)
		if err != nil {
			return nil, err
		}
		out = append(out, pd)
	}
	return out, nil
}

// pageContent reads the page's content stream, converting the library's
// panics on malformed streams into errors.
func pageContent(page pdflib.Page) (content pdflib.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	content = page.Content()
	return content, nil
}

// pageSize resolves the page dimensions from its MediaBox, walking up
// the page tree for inherited boxes, with a US Letter fallback
func pageSize(page pdflib.Page) (width, height float64) {
	defer func() {
		if r := recover(); r != nil {
			width, height = defaultPageWidth, defaultPageHeight
		}
	}()

	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Len() != 4 {
			continue
		}
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultPageWidth, defaultPageHeight
}

// pageRules converts the page's rectangles into ruling lines. Thin
// rectangles become a single rule along their long axis; larger boxes
// (cell borders drawn as outlines) contribute their four edges.
func pageRules(rects []pdflib.Rect, pageHeight, thickness float64) []tables.Rule {
	var rules []tables.Rule
	for _, rc := range rects {
		x0, x1 := rc.Min.X, rc.Max.X
		// Flip to top-left origin; Max.Y is the upper edge in PDF space.
		y0 := pageHeight - rc.Max.Y
		y1 := pageHeight - rc.Min.Y
		w, h := x1-x0, y1-y0

		switch {
		case h <= thickness:
			mid := (y0 + y1) / 2
			rules = append(rules, tables.Rule{X0: x0, Y0: mid, X1: x1, Y1: mid})
		case w <= thickness:
			mid := (x0 + x1) / 2
			rules = append(rules, tables.Rule{X0: mid, Y0: y0, X1: mid, Y1: y1})
		default:
			rules = append(rules,
				tables.Rule{X0: x0, Y0: y0, X1: x1, Y1: y0},
				tables.Rule{X0: x0, Y0: y1, X1: x1, Y1: y1},
				tables.Rule{X0: x0, Y0: y0, X1: x0, Y1: y1},
				tables.Rule{X0: x1, Y0: y0, X1: x1, Y1: y1},
			)
		}
	}
	return rules
}
