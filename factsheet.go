// Package factsheet provides a fluent API for parsing mutual fund
// factsheet PDFs into a structured document record.
//
// Basic usage:
//
//	doc, err := factsheet.Open("factsheet.pdf").Parse()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.Fund.Name)
//
// With options:
//
//	doc, err := factsheet.Open("factsheet.pdf").
//	    HeadingThreshold(12).
//	    Strategies("lines").
//	    Parse()
//
// For advanced use cases, the lower-level reader, layout, tables and
// metadata packages are also available.
package factsheet

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/fundlens/factsheet/layout"
	"github.com/fundlens/factsheet/metadata"
	"github.com/fundlens/factsheet/model"
	"github.com/fundlens/factsheet/reader"
	"github.com/fundlens/factsheet/tables"
)

// Parser accumulates configuration fluently; Parse runs the pipeline.
// A Parser is single-use: each Open/FromReader/FromBytes call builds a
// fresh one.
type Parser struct {
	path       string
	fileName   string
	reader     *reader.Reader
	ownsReader bool
	options    ParseOptions
	err        error // deferred construction error, surfaced by Parse
}

// Open prepares a parser for a PDF file on disk. The file is opened when
// Parse is called and closed before it returns.
//
// Example:
//
//	doc, err := factsheet.Open("factsheet.pdf").Parse()
func Open(path string) *Parser {
	return &Parser{
		path:       path,
		fileName:   filepath.Base(path),
		ownsReader: true,
		options:    defaultOptions(),
	}
}

// FromReader creates a Parser from an already-opened reader.Reader. The
// caller remains responsible for closing the reader, and keeps ownership
// of its configuration: Parse does not override a config set on it.
func FromReader(r *reader.Reader) *Parser {
	return &Parser{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromBytes creates a Parser for an in-memory PDF, e.g. an HTTP upload.
// fileName only labels the output record.
func FromBytes(data []byte, fileName string) *Parser {
	p := &Parser{
		fileName:   fileName,
		ownsReader: true,
		options:    defaultOptions(),
	}
	r, err := reader.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		p.err = err
		return p
	}
	p.reader = r
	return p
}

// FileName overrides the file name recorded on the output document
func (p *Parser) FileName(name string) *Parser {
	p.fileName = name
	return p
}

// HeadingThreshold sets the font size at or above which a span is
// classified as a heading
func (p *Parser) HeadingThreshold(size float64) *Parser {
	p.options.headingThreshold = size
	return p
}

// SplitThreshold sets the text length above which body runs are split
// into sentence-like paragraphs
func (p *Parser) SplitThreshold(length int) *Parser {
	p.options.splitThreshold = length
	return p
}

// Strategies selects the table-detection strategies to run, by registry
// name, in order
func (p *Parser) Strategies(names ...string) *Parser {
	p.options.strategies = names
	return p
}

// WithOptions replaces the full option set
func (p *Parser) WithOptions(opts ParseOptions) *Parser {
	p.options = opts.clone()
	return p
}

// Parse runs the full pipeline: page decomposition, content assembly,
// table extraction, merge, and metadata extraction.
func (p *Parser) Parse() (*model.Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	r := p.reader
	if r == nil {
		if p.path == "" {
			return nil, fmt.Errorf("parse: no input")
		}
		opened, err := reader.Open(p.path)
		if err != nil {
			return nil, err
		}
		r = opened
	}
	if p.ownsReader {
		defer r.Close()
		r.SetConfig(p.options.readerConfig)
	}

	pageData, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return assemble(p.fileName, pageData, p.options)
}

// assemble runs the layout-onward pipeline over decomposed pages
func assemble(fileName string, pageData []*reader.PageData, opts ParseOptions) (*model.Document, error) {
	assembler := layout.NewAssemblerWithConfig(
		&layout.HeadingClassifier{Threshold: opts.headingThreshold},
		opts.splitThreshold,
	)

	doc := model.NewDocument(fileName)
	geoms := make([]tables.PageGeometry, 0, len(pageData))
	coverText := ""
	for i, pd := range pageData {
		if i == 0 {
			coverText = pd.Input.RawText
		}
		doc.AddPage(&model.Page{Content: assembler.Assemble(pd.Input)})
		geoms = append(geoms, pd.Geometry)
	}

	extractor, err := newExtractor(opts.strategies)
	if err != nil {
		return nil, err
	}
	layout.Merge(doc.Pages, extractor.ExtractPages(geoms))

	fund, docDate := metadata.Extract(doc.Pages, coverText)
	doc.Fund = fund
	doc.DocDate = docDate

	return doc, nil
}

func newExtractor(names []string) (*tables.Extractor, error) {
	strategies := make([]tables.Strategy, 0, len(names))
	for _, name := range names {
		s := tables.GetStrategy(name)
		if s == nil {
			return nil, fmt.Errorf("unknown table strategy %q", name)
		}
		strategies = append(strategies, s)
	}
	return tables.NewExtractorWithStrategies(strategies...), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts or
// tests where error handling would be cumbersome.
//
// Example:
//
//	doc := factsheet.Must(factsheet.Open("factsheet.pdf").Parse())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
