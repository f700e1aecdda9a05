// Package metadata extracts fund-level facts from assembled page content.
//
// Extraction is a single forward pass over every heading and paragraph
// item, in merged reading order, applying independent labeled-value
// pattern rules. Scalar fields are first-match-wins: once set they never
// change. Fund managers accumulate across matches with exact-string
// deduplication, driven by a small buffered state machine that handles
// manager names wrapping onto a following line.
package metadata
