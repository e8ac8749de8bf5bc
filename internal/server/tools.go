package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// filterProperties describes the filter vocabulary accepted by
// list_facets' filter_query sub-object. It mirrors search_documents'
// filter parameters minus pagination, sorting, and field selection.
func filterProperties() map[string]any {
	return map[string]any{
		"query": map[string]any{
			"type":        "string",
			"description": "Full-text search query",
		},
		"country": map[string]any{
			"type":        "string",
			"description": "Exact country name (e.g., 'Mexico', 'India')",
		},
		"document_type": map[string]any{
			"type":        "string",
			"description": "Exact document type (e.g., 'Project Appraisal Document')",
		},
		"theme": map[string]any{
			"type":        "string",
			"description": "Exact major theme name",
		},
		"sector": map[string]any{
			"type":        "string",
			"description": "Exact sector name",
		},
		"language": map[string]any{
			"type":        "string",
			"description": "Exact document language (e.g., 'English', 'Spanish')",
		},
		"start_date": map[string]any{
			"type":        "string",
			"description": "Earliest document date, ISO format (YYYY-MM-DD)",
		},
		"end_date": map[string]any{
			"type":        "string",
			"description": "Latest document date, ISO format (YYYY-MM-DD)",
		},
	}
}

// tools returns all tool definitions paired with their handlers.
// Every tool is a read-only, non-destructive view over the public
// Documents & Reports API.
func (s *Server) tools() []mcpserver.ServerTool {
	return []mcpserver.ServerTool{
		{
			Tool: mcp.NewTool("search_documents",
				mcp.WithDescription("Search the World Bank Documents & Reports repository. All filters are optional; combine them to narrow results. Returns one page of matching documents as a table plus structured data."),
				mcp.WithString("query", mcp.Description("Full-text search query")),
				mcp.WithString("country", mcp.Description("Exact country name (e.g., 'Mexico', 'India')")),
				mcp.WithString("document_type", mcp.Description("Exact document type (e.g., 'Project Appraisal Document')")),
				mcp.WithString("theme", mcp.Description("Exact major theme name")),
				mcp.WithString("sector", mcp.Description("Exact sector name")),
				mcp.WithString("language", mcp.Description("Exact document language (e.g., 'English', 'Spanish')")),
				mcp.WithString("start_date", mcp.Description("Earliest document date, ISO format (YYYY-MM-DD)")),
				mcp.WithString("end_date", mcp.Description("Latest document date, ISO format (YYYY-MM-DD)")),
				mcp.WithNumber("limit",
					mcp.Description("Maximum documents to return (default 20, max 100)"),
					mcp.Min(1), mcp.Max(100),
				),
				mcp.WithNumber("offset", mcp.Description("Number of documents to skip, for pagination")),
				mcp.WithArray("fields",
					mcp.Description("Specific wire-format fields to return (e.g., 'id', 'display_title', 'docdt')"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithString("sort_by",
					mcp.Description("Sort field"),
					mcp.Enum("docdt", "docna", "docty", "repnb"),
				),
				mcp.WithString("sort_order",
					mcp.Description("Sort direction"),
					mcp.Enum("asc", "desc"),
				),
				mcp.WithTitleAnnotation("Search World Bank documents"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: s.handleSearchDocuments,
		},
		{
			Tool: mcp.NewTool("get_document",
				mcp.WithDescription("Retrieve a single World Bank document by its ID. Returns the document's metadata as a table plus structured data."),
				mcp.WithString("document_id",
					mcp.Description("Document ID, as returned by search_documents"),
					mcp.Required(),
				),
				mcp.WithArray("fields",
					mcp.Description("Specific wire-format fields to return"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithTitleAnnotation("Get World Bank document"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: s.handleGetDocument,
		},
		{
			Tool: mcp.NewTool("list_facets",
				mcp.WithDescription("List the distinct values and occurrence counts of one or more filterable dimensions (facets), optionally scoped by a filter. Useful for discovering valid filter values before searching."),
				mcp.WithArray("facets",
					mcp.Description("Facet names to aggregate (e.g., 'count' for countries, 'docty' for document types, 'lang_exact' for languages)"),
					mcp.Items(map[string]any{"type": "string"}),
					mcp.Required(),
				),
				mcp.WithObject("filter_query",
					mcp.Description("Optional filter scoping the facet counts; same vocabulary as search_documents minus pagination and sorting"),
					mcp.Properties(filterProperties()),
				),
				mcp.WithTitleAnnotation("List document facets"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: s.handleListFacets,
		},
		{
			Tool: mcp.NewTool("list_countries",
				mcp.WithDescription("List every country in the repository with its document count, sorted by count descending."),
				mcp.WithTitleAnnotation("List countries"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: s.handleListCountries,
		},
		{
			Tool: mcp.NewTool("list_document_types",
				mcp.WithDescription("List every document type in the repository with its document count, sorted by count descending."),
				mcp.WithTitleAnnotation("List document types"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: s.handleListDocumentTypes,
		},
	}
}
