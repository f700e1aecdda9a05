// Package text cleans the noisy fragments produced by PDF text extraction.
//
// Normalize is a deterministic, idempotent string transform: it collapses
// whitespace, rejoins hyphen-broken words, and re-inserts the inter-word
// spacing that extraction loses (lower→upper, letter→digit and digit→letter
// transitions). FixGluedDomainTerms applies a fixed table of domain-specific
// substitutions for phrases the generic heuristics still glue together.
// IsNoise flags regulatory boilerplate and page-number lines so they can be
// dropped before they reach the content stream.
//
// The de-gluing rules are inherently heuristic; keeping them behind this
// package lets them be extended and tested independently of layout logic.
package text
