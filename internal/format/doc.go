// Package format renders normalized API results as fixed-width
// columnar text for direct display.
//
// The generic renderer in table.go lays out any ordered list of
// uniform records: each column is as wide as its widest value or its
// header, whichever is longer, values are left-justified, and rows are
// joined with " | " under a dashed separator line. An empty record
// list renders as a fixed "No results found." message instead of a
// headers-only table.
//
// The domain views in views.go build on the generic renderer:
//
//   - SearchResults: ID / Title / Type / Country / Date columns, with
//     titles truncated (ellipsis suffix) and dates reduced to
//     YYYY-MM-DD.
//   - NameCounts: two-column Name / Count listing with locale
//     thousands separators.
//   - Facets: one titled Name / Count table per facet.
//
// All functions are pure and allocate only their output string.
package format
