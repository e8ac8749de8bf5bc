package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ironsheep/worldbank-docs-mcp/internal/wbapi"
)

// DefaultTitleWidth is the title column limit used when the caller
// does not specify one.
const DefaultTitleWidth = 60

// counts formats integers with thousands separators.
var counts = message.NewPrinter(language.English)

// SearchResults renders one result page as an ID / Title / Type /
// Country / Date table. Titles are truncated to titleWidth runes with
// embedded newlines collapsed to spaces; dates are reduced to
// YYYY-MM-DD. titleWidth <= 0 selects DefaultTitleWidth.
func SearchResults(result *wbapi.SearchResult, titleWidth int) string {
	if titleWidth <= 0 {
		titleWidth = DefaultTitleWidth
	}

	columns := []string{"ID", "Title", "Type", "Country", "Date"}
	rows := make([]map[string]string, 0, len(result.Documents))
	for _, doc := range result.Documents {
		title := strings.Join(strings.Fields(doc.Title), " ")
		rows = append(rows, map[string]string{
			"ID":      doc.ID,
			"Title":   Truncate(title, titleWidth),
			"Type":    doc.DocumentType,
			"Country": doc.Country,
			"Date":    dateOnly(doc.Date),
		})
	}
	return Table(columns, rows)
}

// NameCounts renders facet values as a Name / Count table with locale
// thousands separators.
func NameCounts(values []wbapi.FacetValue) string {
	columns := []string{"Name", "Count"}
	rows := make([]map[string]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, map[string]string{
			"Name":  v.Name,
			"Count": counts.Sprintf("%d", v.Count),
		})
	}
	return Table(columns, rows)
}

// Facets renders one titled Name / Count table per facet, in the
// given facet order.
func Facets(order []string, facets map[string][]wbapi.FacetValue) string {
	sections := make([]string, 0, len(order))
	for _, name := range order {
		sections = append(sections, name+":\n"+NameCounts(facets[name]))
	}
	return strings.Join(sections, "\n\n")
}

// dateLayouts covers the timestamp spellings the API has been seen to
// return.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateOnly reduces an upstream timestamp to its YYYY-MM-DD date part.
// Unparseable values pass through unchanged; empty stays empty.
func dateOnly(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
