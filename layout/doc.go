// Package layout reconstructs document structure from positioned page
// geometry: it classifies spans as headings or body text, assembles each
// page's blocks into typed content items in reading order while tracking
// the current section and sub-section, and merges extracted tables into
// the final per-page ordering.
//
// Assembly is page-local: the section state is an explicit accumulator
// that resets at the start of each page, so pages can be assembled
// independently.
package layout
