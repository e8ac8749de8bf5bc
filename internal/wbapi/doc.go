// Package wbapi provides a client for the World Bank Documents & Reports
// search API (https://search.worldbank.org/api/v3/wds).
//
// This package implements the full request/response cycle against the
// upstream API: translating tool-facing filter names into the API's
// query-parameter vocabulary, pacing outbound requests, and normalizing
// the API's quirky response shape into ordered Go slices.
//
// # Request Pacing
//
// The upstream API publishes no rate limit, so the client imposes its
// own: no two requests start less than 300ms apart. The gate is a
// single-token rate.Limiter owned by the Client, which makes it safe
// even if callers ever dispatch concurrently. The MCP transport
// delivers one tool call at a time, so in practice the limiter is only
// ever waited on by one goroutine.
//
// # Wire Format
//
// The API returns documents as a JSON object keyed by "D" + document
// ID rather than as an array, with one reserved key ("facets") that
// carries aggregate data instead of a document. Normalization iterates
// the object's keys in wire order, skips the reserved key, and
// materializes an ordered []Document. The rest of the system only ever
// sees slices.
//
// The top-level total/rows/page counters arrive as either JSON numbers
// or quoted strings depending on the endpoint; both decode. When
// absent they default to 0, the extracted document count, and 1.
//
// # Parameter Vocabulary
//
// Tool-facing filter names map onto the API's parameters as follows:
//
//	query         -> qterm
//	country       -> count_exact
//	document_type -> docty_exact
//	theme         -> majtheme_exact
//	sector        -> sectr_exact
//	language      -> lang_exact
//	start_date    -> strdate
//	end_date      -> enddate
//	limit         -> rows   (default 20)
//	offset        -> os
//	fields        -> fl     (comma-joined)
//	sort_by       -> sort   (docdt, docna, docty, repnb)
//	sort_order    -> order  (asc, desc)
//
// Only set fields are transmitted. The format=json parameter is always
// forced, overriding any caller-supplied value.
//
// # Error Handling
//
// Three error types cover the failure modes:
//   - ValidationError: a required argument is missing or a value is
//     outside its enumeration. Detected before any network call.
//   - NetworkError: the upstream API answered with a non-success HTTP
//     status. Carries the status code and text. Never retried.
//   - NotFoundError: a document lookup matched no record.
//
// All three unwrap with errors.As for callers that need to
// distinguish them.
package wbapi
