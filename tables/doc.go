// Package tables detects, normalizes and deduplicates tabular data.
//
// Detection runs two strategies per page: "lines" builds a grid from ruling
// lines and rectangle edges, "text" clusters text runs by alignment alone.
// Both return raw grids whose first row is treated as the header.
//
// Normalization cleans every cell, re-merges fragments that extraction
// split across cells, and strips trailing empty cells from data rows.
// Because the two strategies often find the same table with different
// cell-splitting artifacts, results are deduplicated by a structural
// fingerprint (normalized headers plus row count), keeping the first table
// seen per fingerprint.
package tables
