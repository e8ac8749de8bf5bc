package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ironsheep/worldbank-docs-mcp/internal/format"
	"github.com/ironsheep/worldbank-docs-mcp/internal/wbapi"
)

// toolResult pairs the human-readable rendering with the structured
// payload describing the same data.
func toolResult(text string, payload any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(text)},
		StructuredContent: payload,
	}
}

// toolError converts a domain error into an error-flagged tool result.
// Validation, network, and not-found failures all surface to the
// caller this way rather than crashing the protocol loop.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// === search_documents ===

type searchDocumentsArgs struct {
	Query        string   `json:"query"`
	Country      string   `json:"country"`
	DocumentType string   `json:"document_type"`
	Theme        string   `json:"theme"`
	Sector       string   `json:"sector"`
	Language     string   `json:"language"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Limit        int      `json:"limit"`
	Offset       int      `json:"offset"`
	Fields       []string `json:"fields"`
	SortBy       string   `json:"sort_by"`
	SortOrder    string   `json:"sort_order"`
}

func (a searchDocumentsArgs) toFilter() wbapi.SearchFilter {
	return wbapi.SearchFilter{
		Query:        a.Query,
		Country:      a.Country,
		DocumentType: a.DocumentType,
		Theme:        a.Theme,
		Sector:       a.Sector,
		Language:     a.Language,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		Fields:       a.Fields,
		Limit:        a.Limit,
		Offset:       a.Offset,
		SortBy:       a.SortBy,
		SortOrder:    a.SortOrder,
	}
}

func (s *Server) handleSearchDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchDocumentsArgs
	if err := req.BindArguments(&args); err != nil {
		return toolError(err), nil
	}

	result, err := s.api.Search(ctx, args.toFilter())
	if err != nil {
		return toolError(err), nil
	}

	return toolResult(format.SearchResults(result, 0), result), nil
}

// === get_document ===

type getDocumentArgs struct {
	DocumentID string   `json:"document_id"`
	Fields     []string `json:"fields"`
}

type getDocumentPayload struct {
	Document *wbapi.Document `json:"document"`
}

func (s *Server) handleGetDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getDocumentArgs
	if err := req.BindArguments(&args); err != nil {
		return toolError(err), nil
	}

	doc, err := s.api.GetDocument(ctx, args.DocumentID, args.Fields)
	if err != nil {
		return toolError(err), nil
	}

	// Render the single document as a one-row results table.
	page := &wbapi.SearchResult{Total: 1, Rows: 1, Page: 1, Documents: []wbapi.Document{*doc}}
	return toolResult(format.SearchResults(page, 0), getDocumentPayload{Document: doc}), nil
}

// === list_facets ===

type listFacetsArgs struct {
	Facets      []string             `json:"facets"`
	FilterQuery *searchDocumentsArgs `json:"filter_query"`
}

type listFacetsPayload struct {
	Facets map[string][]wbapi.FacetValue `json:"facets"`
}

func (s *Server) handleListFacets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listFacetsArgs
	if err := req.BindArguments(&args); err != nil {
		return toolError(err), nil
	}

	var filter *wbapi.SearchFilter
	if args.FilterQuery != nil {
		f := args.FilterQuery.toFilter()
		filter = &f
	}

	facets, err := s.api.ListFacets(ctx, args.Facets, filter)
	if err != nil {
		return toolError(err), nil
	}

	return toolResult(format.Facets(args.Facets, facets), listFacetsPayload{Facets: facets}), nil
}

// === list_countries ===

type listCountriesPayload struct {
	Countries []wbapi.FacetValue `json:"countries"`
}

func (s *Server) handleListCountries(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	countries, err := s.api.ListCountries(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return toolResult(format.NameCounts(countries), listCountriesPayload{Countries: countries}), nil
}

// === list_document_types ===

type listDocumentTypesPayload struct {
	DocumentTypes []wbapi.FacetValue `json:"document_types"`
}

func (s *Server) handleListDocumentTypes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := s.api.ListDocumentTypes(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return toolResult(format.NameCounts(types), listDocumentTypesPayload{DocumentTypes: types}), nil
}
