package reader

import pdflib "github.com/ledongthuc/pdf"

// countImages counts the image XObjects in the page's resource
// dictionary. Factsheets draw their charts as embedded images, so the
// count drives the chart placeholders downstream. Malformed resource
// entries are treated as a page without images.
func countImages(page pdflib.Page) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	xobjects := page.V.Key("Resources").Key("XObject")
	for _, name := range xobjects.Keys() {
		if xobjects.Key(name).Key("Subtype").Name() == "Image" {
			n++
		}
	}
	return n
}
