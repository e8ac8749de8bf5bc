package wbapi

import (
	"net/url"
	"strconv"
	"strings"
)

// defaultRows is the page size used when a filter does not set one.
const defaultRows = 20

// SearchFilter carries the tool-facing search vocabulary. Every field
// is optional; the zero value means "unfiltered" for that dimension.
// A filter is built once per request and never mutated.
type SearchFilter struct {
	Query        string
	Country      string
	DocumentType string
	Theme        string
	Sector       string
	Language     string
	StartDate    string
	EndDate      string
	Fields       []string
	Limit        int
	Offset       int
	SortBy       string
	SortOrder    string
}

// sortFields enumerates the upstream API's accepted sort keys.
var sortFields = map[string]bool{
	"docdt": true, // document date
	"docna": true, // document name
	"docty": true, // document type
	"repnb": true, // report number
}

// validate checks the enumerated fields before any network call.
func (f SearchFilter) validate() error {
	if f.SortBy != "" && !sortFields[f.SortBy] {
		return &ValidationError{Field: "sort_by", Reason: "must be one of docdt, docna, docty, repnb"}
	}
	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		return &ValidationError{Field: "sort_order", Reason: "must be asc or desc"}
	}
	return nil
}

// buildParams translates the filter into the API's query-parameter
// vocabulary. Unset fields are omitted entirely; rows always carries
// the page size (defaulting to 20). Dates pass through unvalidated,
// as the upstream API does its own parsing.
func (f SearchFilter) buildParams() url.Values {
	params := url.Values{}
	f.applyFilterParams(params)

	rows := f.Limit
	if rows <= 0 {
		rows = defaultRows
	}
	params.Set("rows", strconv.Itoa(rows))
	if f.Offset > 0 {
		params.Set("os", strconv.Itoa(f.Offset))
	}
	if len(f.Fields) > 0 {
		params.Set("fl", strings.Join(f.Fields, ","))
	}
	if f.SortBy != "" {
		params.Set("sort", f.SortBy)
	}
	if f.SortOrder != "" {
		params.Set("order", f.SortOrder)
	}
	return params
}

// applyFilterParams merges only the filtering dimensions (no
// pagination, sorting, or field selection) into params. Facet requests
// use this to scope their counts.
func (f SearchFilter) applyFilterParams(params url.Values) {
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("qterm", f.Query)
	set("count_exact", f.Country)
	set("docty_exact", f.DocumentType)
	set("majtheme_exact", f.Theme)
	set("sectr_exact", f.Sector)
	set("lang_exact", f.Language)
	set("strdate", f.StartDate)
	set("enddate", f.EndDate)
}
