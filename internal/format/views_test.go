package format

import (
	"strings"
	"testing"

	"github.com/ironsheep/worldbank-docs-mcp/internal/wbapi"
)

func TestSearchResults(t *testing.T) {
	result := &wbapi.SearchResult{
		Total: 2,
		Rows:  2,
		Page:  1,
		Documents: []wbapi.Document{
			{ID: "1", Title: "Mexico - Energy Sector Review", DocumentType: "Report", Country: "Mexico", Date: "2021-06-15T00:00:00Z"},
			{ID: "2", Title: "India - Power Grid Study", DocumentType: "Working Paper", Country: "India", Date: "2020-03-01T00:00:00Z"},
		},
	}

	out := SearchResults(result, 0)
	lines := strings.Split(out, "\n")

	if len(lines) != 4 {
		t.Fatalf("line count: got %d, want 4", len(lines))
	}
	for _, col := range []string{"ID", "Title", "Type", "Country", "Date"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header missing column %q: %q", col, lines[0])
		}
	}
	if !strings.Contains(lines[2], "2021-06-15") {
		t.Errorf("row 0 missing date-only value: %q", lines[2])
	}
	if strings.Contains(out, "00:00:00") {
		t.Errorf("time component leaked into output:\n%s", out)
	}
}

func TestSearchResults_TitleTruncation(t *testing.T) {
	longTitle := strings.Repeat("very long title ", 10) // 160 chars
	result := &wbapi.SearchResult{
		Documents: []wbapi.Document{{ID: "1", Title: longTitle}},
	}

	out := SearchResults(result, 0)
	if !strings.Contains(out, "...") {
		t.Error("long title not truncated with ellipsis")
	}
	for _, line := range strings.Split(out, "\n")[2:] {
		if strings.Contains(line, longTitle) {
			t.Error("full title rendered despite truncation")
		}
	}

	// Caller-specified width wins over the default.
	narrow := SearchResults(result, 20)
	row := strings.Split(narrow, "\n")[2]
	title := strings.Split(row, " | ")[1]
	if got := len([]rune(strings.TrimRight(title, " "))); got > 20 {
		t.Errorf("title cell width: got %d, want <= 20", got)
	}
}

func TestSearchResults_NewlinesCollapsed(t *testing.T) {
	result := &wbapi.SearchResult{
		Documents: []wbapi.Document{{ID: "1", Title: "Line one\nLine two\r\nLine three"}},
	}

	out := SearchResults(result, 0)
	if len(strings.Split(out, "\n")) != 3 {
		t.Errorf("embedded newlines broke table layout:\n%s", out)
	}
	if !strings.Contains(out, "Line one Line two Line three") {
		t.Errorf("newlines not collapsed to spaces:\n%s", out)
	}
}

func TestSearchResults_Empty(t *testing.T) {
	out := SearchResults(&wbapi.SearchResult{}, 0)
	if out != NoResults {
		t.Errorf("empty result: got %q, want %q", out, NoResults)
	}
}

func TestSearchResults_MissingDateRendersEmpty(t *testing.T) {
	result := &wbapi.SearchResult{
		Documents: []wbapi.Document{{ID: "1", Title: "Undated"}},
	}
	out := SearchResults(result, 0)
	row := strings.Split(out, "\n")[2]
	cells := strings.Split(row, " | ")
	if strings.TrimSpace(cells[len(cells)-1]) != "" {
		t.Errorf("date cell: got %q, want empty", cells[len(cells)-1])
	}
}

func TestNameCounts(t *testing.T) {
	values := []wbapi.FacetValue{
		{Name: "Mexico", Count: 1234567},
		{Name: "Chad", Count: 42},
	}

	out := NameCounts(values)
	if !strings.Contains(out, "1,234,567") {
		t.Errorf("count missing thousands separators:\n%s", out)
	}
	if !strings.Contains(out, "Name") || !strings.Contains(out, "Count") {
		t.Errorf("missing Name/Count headers:\n%s", out)
	}
}

func TestNameCounts_Empty(t *testing.T) {
	if out := NameCounts(nil); out != NoResults {
		t.Errorf("empty listing: got %q, want %q", out, NoResults)
	}
}

func TestFacets(t *testing.T) {
	facets := map[string][]wbapi.FacetValue{
		"count": {{Name: "Mexico", Count: 900}},
		"docty": {{Name: "Report", Count: 4021}},
	}

	out := Facets([]string{"count", "docty"}, facets)

	countIdx := strings.Index(out, "count:")
	doctyIdx := strings.Index(out, "docty:")
	if countIdx == -1 || doctyIdx == -1 {
		t.Fatalf("missing facet titles:\n%s", out)
	}
	// Sections follow requested order, not map order.
	if countIdx > doctyIdx {
		t.Errorf("facet sections out of requested order:\n%s", out)
	}
	if !strings.Contains(out, "4,021") {
		t.Errorf("docty counts missing separators:\n%s", out)
	}
}

func TestDateOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2021-06-15T00:00:00Z", "2021-06-15"},
		{"no zone", "2021-06-15T13:45:00", "2021-06-15"},
		{"space separated", "2021-06-15 13:45:00", "2021-06-15"},
		{"date only", "2021-06-15", "2021-06-15"},
		{"empty", "", ""},
		{"unparseable", "June 2021", "June 2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateOnly(tt.in); got != tt.want {
				t.Errorf("dateOnly(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
