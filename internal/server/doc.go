// Package server implements the MCP (Model Context Protocol) server for
// World Bank document-search tools.
//
// This package exposes the Documents & Reports API through five MCP
// tools, served over stdio to Claude and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0 via the mcp-go
// framework: requests arrive on stdin, responses leave on stdout, and
// all logging goes to stderr.
//
// # Available Tools
//
//   - search_documents: filtered, paginated full-text search
//   - get_document: single-document lookup by ID
//   - list_facets: distinct values and counts for filterable dimensions
//   - list_countries: country listing sorted by document count
//   - list_document_types: document-type listing sorted by count
//
// Every tool is annotated read-only, non-destructive, idempotent, and
// open-world: they only ever issue GET requests against a public API.
//
// # Responses
//
// Each successful tool call returns two parallel representations of the
// same data: a fixed-width text table for direct display and a
// structured payload for programmatic consumption.
//
// # Error Handling
//
// Validation failures (missing or out-of-range arguments), upstream
// HTTP failures, and not-found lookups are converted into error-flagged
// tool results with a human-readable message. They never crash the
// protocol loop; only transport startup failure is fatal to the
// process. No retries are attempted at any layer.
//
// # Concurrency
//
// The transport delivers one tool call at a time and each call runs to
// completion, including its network round trip, before the next is
// accepted. Request pacing lives in the wbapi client.
package server
