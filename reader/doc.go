// Package reader opens factsheet PDFs and turns each page into the raw
// material the layout pipeline consumes: positioned text blocks with
// per-span font sizes, page geometry (text runs and ruling lines) for
// table detection, an embedded-image count, and whole-page plain text.
//
// # Opening files
//
// Use [Open] for a file on disk:
//
//	r, err := reader.Open("factsheet.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
// Or [NewReader] with any io.ReaderAt (e.g. an uploaded file held in
// memory).
//
// # Coordinates
//
// PDF content streams place text bottom-up; everything this package
// emits is flipped to top-left origin so that smaller Top means higher
// on the page, matching reading order.
package reader
