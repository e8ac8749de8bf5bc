package format

import "strings"

// NoResults is rendered in place of a table when there are no rows.
const NoResults = "No results found."

// Table renders rows as fixed-width columns in the given column order.
// Each row maps column name to display value; missing values render
// empty. The output is a header row, a dashed separator, and one line
// per row, with cells joined by " | ".
func Table(columns []string, rows []map[string]string) string {
	if len(rows) == 0 {
		return NoResults
	}

	// Column width is the longer of the header and the widest value.
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len([]rune(col))
		for _, row := range rows {
			if n := len([]rune(row[col])); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder

	headerCells := make([]string, len(columns))
	ruleCells := make([]string, len(columns))
	for i, col := range columns {
		headerCells[i] = pad(col, widths[i])
		ruleCells[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(strings.Join(headerCells, " | "))
	b.WriteByte('\n')
	b.WriteString(strings.Join(ruleCells, "-+-"))
	b.WriteByte('\n')

	for r, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = pad(row[col], widths[i])
		}
		b.WriteString(strings.Join(cells, " | "))
		if r < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// pad left-justifies s to width runes.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Truncate shortens s to at most limit runes, replacing the tail with
// "..." when anything was cut. Truncation is idempotent at a fixed
// limit.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit || limit <= 3 {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
