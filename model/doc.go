// Package model defines the data types shared across the factsheet parsing
// pipeline: the positioned input geometry handed over by the PDF reader
// (blocks, lines, spans with font sizes), and the structured output record
// (pages of typed content items, normalized tables, and the fund metadata
// summary).
//
// All output types marshal directly to the final JSON record; nothing is
// mutated after the pipeline completes.
//
// Basic usage:
//
//	page := &model.Page{PageNumber: 1}
//	page.Content = append(page.Content, model.ContentItem{
//	    Kind: model.KindHeading,
//	    Text: "PERFORMANCE",
//	})
//	page.SortContent()
package model
