package wbapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Document is one retrieved record, carrying the upstream field names.
// The country label lives in a field called "count" on the wire; that
// is an upstream naming quirk, not a numeric count.
type Document struct {
	ID           string `json:"id"`
	Title        string `json:"display_title,omitempty"`
	DocumentType string `json:"docty,omitempty"`
	Country      string `json:"count,omitempty"`
	Date         string `json:"docdt,omitempty"`
	URL          string `json:"url,omitempty"`
	PDFURL       string `json:"pdfurl,omitempty"`
	Abstract     string `json:"abstract,omitempty"`
}

// SearchResult is one page of search results. Total counts every match
// in the corpus and may exceed Rows, the number of documents returned
// for this page.
type SearchResult struct {
	Total     int        `json:"total"`
	Rows      int        `json:"rows"`
	Page      int        `json:"page"`
	Documents []Document `json:"documents"`
}

// FacetValue is one distinct value of a filterable dimension together
// with its occurrence count.
type FacetValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// wireCount decodes an integer that the API encodes as either a JSON
// number or a quoted string, depending on the endpoint.
type wireCount int

func (c *wireCount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = wireCount(n)
	return nil
}

// wireResponse is the top-level shape of every API reply. Documents is
// kept raw because its keys carry meaning (document order) and one of
// them ("facets") is not a document at all.
type wireResponse struct {
	Total     wireCount       `json:"total"`
	Rows      wireCount       `json:"rows"`
	Page      wireCount       `json:"page"`
	Documents json.RawMessage `json:"documents"`
}

// wireFacetValue tolerates both spellings the API uses for the value
// label.
type wireFacetValue struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Count wireCount `json:"count"`
}

func (w wireFacetValue) toFacetValue() FacetValue {
	name := w.Name
	if name == "" {
		name = w.Label
	}
	return FacetValue{Name: name, Count: int(w.Count)}
}
