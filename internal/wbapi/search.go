package wbapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// facetKey is the reserved key inside the documents mapping that
// carries aggregate facet data rather than a document.
const facetKey = "facets"

// Facet names for the convenience listings.
const (
	facetCountry      = "count"
	facetDocumentType = "docty"
)

// Search runs a filtered query and returns one normalized result page.
func (c *Client) Search(ctx context.Context, filter SearchFilter) (*SearchResult, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, filter.buildParams())
	if err != nil {
		return nil, err
	}
	return parseSearchResult(body)
}

// GetDocument retrieves a single document by ID. The API keys each
// returned document by "D" + ID, but that convention is not guaranteed,
// so a miss on the synthesized key falls back to scanning the returned
// mapping for a matching id field.
func (c *Client) GetDocument(ctx context.Context, documentID string, fields []string) (*Document, error) {
	if documentID == "" {
		return nil, &ValidationError{Field: "document_id", Reason: "is required"}
	}

	filter := SearchFilter{Fields: fields, Limit: 1}
	params := filter.buildParams()
	params.Set("id", documentID)

	body, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	result, err := parseSearchResult(body)
	if err != nil {
		return nil, err
	}

	keyed, err := documentsByKey(body)
	if err != nil {
		return nil, err
	}
	if doc, ok := keyed["D"+documentID]; ok {
		return &doc, nil
	}
	for _, doc := range result.Documents {
		if doc.ID == documentID {
			return &doc, nil
		}
	}
	return nil, &NotFoundError{DocumentID: documentID}
}

// ListFacets returns the distinct values and occurrence counts for the
// named facets, optionally scoped by a filter. Document rows are
// suppressed (rows=0); only aggregate data comes back. Value order
// within each facet follows the wire response and carries no sort
// guarantee.
func (c *Client) ListFacets(ctx context.Context, facets []string, filter *SearchFilter) (map[string][]FacetValue, error) {
	if len(facets) == 0 {
		return nil, &ValidationError{Field: "facets", Reason: "at least one facet name is required"}
	}

	params := url.Values{}
	if filter != nil {
		filter.applyFilterParams(params)
	}
	params.Set("fct", strings.Join(facets, ","))
	params.Set("rows", "0")

	body, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	return parseFacets(body)
}

// ListCountries returns every country facet value, sorted by count
// descending. Ties keep their wire order.
func (c *Client) ListCountries(ctx context.Context) ([]FacetValue, error) {
	return c.listSortedFacet(ctx, facetCountry)
}

// ListDocumentTypes returns every document-type facet value, sorted by
// count descending. Ties keep their wire order.
func (c *Client) ListDocumentTypes(ctx context.Context) ([]FacetValue, error) {
	return c.listSortedFacet(ctx, facetDocumentType)
}

func (c *Client) listSortedFacet(ctx context.Context, name string) ([]FacetValue, error) {
	facets, err := c.ListFacets(ctx, []string{name}, nil)
	if err != nil {
		return nil, err
	}
	values := facets[name]
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Count > values[j].Count
	})
	return values, nil
}

// parseSearchResult decodes a wire response into a normalized
// SearchResult. Missing total/rows/page default to 0, the extracted
// document count, and 1.
func parseSearchResult(body []byte) (*SearchResult, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode World Bank API response: %w", err)
	}

	docs, err := decodeDocuments(wire.Documents)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Total:     int(wire.Total),
		Rows:      int(wire.Rows),
		Page:      int(wire.Page),
		Documents: docs,
	}
	if result.Rows == 0 {
		result.Rows = len(docs)
	}
	if result.Page == 0 {
		result.Page = 1
	}
	return result, nil
}

// decodeDocuments materializes the keyed documents object into an
// ordered slice, preserving wire key order and skipping the reserved
// facets key. A streaming decoder is required here: unmarshaling into
// a map would lose the order the API ranked the documents in.
func decodeDocuments(raw json.RawMessage) ([]Document, error) {
	docs := []Document{}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return docs, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, fmt.Errorf("decode documents object: %w", err)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode documents object: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode documents object: unexpected token %v", keyTok)
		}
		if key == facetKey {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("skip facets entry: %w", err)
			}
			continue
		}
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document %q: %w", key, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// documentsByKey re-reads the documents object as a key-to-document
// mapping for the synthesized-key lookup path.
func documentsByKey(body []byte) (map[string]Document, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode World Bank API response: %w", err)
	}
	if len(wire.Documents) == 0 {
		return map[string]Document{}, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(wire.Documents, &entries); err != nil {
		return nil, fmt.Errorf("decode documents object: %w", err)
	}

	keyed := make(map[string]Document, len(entries))
	for key, entry := range entries {
		if key == facetKey {
			continue
		}
		var doc Document
		if err := json.Unmarshal(entry, &doc); err != nil {
			return nil, fmt.Errorf("decode document %q: %w", key, err)
		}
		keyed[key] = doc
	}
	return keyed, nil
}

// parseFacets extracts the aggregate facet data nested under the
// reserved key of the documents object.
func parseFacets(body []byte) (map[string][]FacetValue, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode World Bank API response: %w", err)
	}

	facets := map[string][]FacetValue{}
	if len(wire.Documents) == 0 {
		return facets, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(wire.Documents, &entries); err != nil {
		return nil, fmt.Errorf("decode documents object: %w", err)
	}
	raw, ok := entries[facetKey]
	if !ok {
		return facets, nil
	}

	var wireFacets map[string][]wireFacetValue
	if err := json.Unmarshal(raw, &wireFacets); err != nil {
		return nil, fmt.Errorf("decode facets entry: %w", err)
	}
	for name, values := range wireFacets {
		converted := make([]FacetValue, 0, len(values))
		for _, v := range values {
			converted = append(converted, v.toFacetValue())
		}
		facets[name] = converted
	}
	return facets, nil
}
