package format

import (
	"strings"
	"testing"
)

func TestTable_ColumnWidths(t *testing.T) {
	columns := []string{"ID", "Title"}
	rows := []map[string]string{
		{"ID": "1", "Title": "Short"},
		{"ID": "12345678", "Title": "A"},
	}

	out := Table(columns, rows)
	lines := strings.Split(out, "\n")

	// Width is max(header, widest value): ID -> 8, Title -> 5.
	wantHeader := "ID       | Title"
	if lines[0] != wantHeader {
		t.Errorf("header: got %q, want %q", lines[0], wantHeader)
	}
	wantRule := "---------+------"
	if lines[1] != wantRule {
		t.Errorf("rule: got %q, want %q", lines[1], wantRule)
	}
	if lines[2] != "1        | Short" {
		t.Errorf("row 0: got %q", lines[2])
	}
	if lines[3] != "12345678 | A    " {
		t.Errorf("row 1: got %q", lines[3])
	}
}

func TestTable_LineCount(t *testing.T) {
	columns := []string{"Name", "Count"}
	tests := []struct {
		name string
		rows int
	}{
		{"one row", 1},
		{"five rows", 5},
		{"fifty rows", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]map[string]string, tt.rows)
			for i := range rows {
				rows[i] = map[string]string{"Name": "x", "Count": "1"}
			}

			out := Table(columns, rows)
			got := len(strings.Split(out, "\n"))
			// Header plus separator plus one line per row.
			if got != tt.rows+2 {
				t.Errorf("line count: got %d, want %d", got, tt.rows+2)
			}
		})
	}
}

func TestTable_EmptyRows(t *testing.T) {
	out := Table([]string{"ID", "Title"}, nil)
	if out != NoResults {
		t.Errorf("empty table: got %q, want %q", out, NoResults)
	}
}

func TestTable_MissingValuesRenderEmpty(t *testing.T) {
	out := Table([]string{"A", "B"}, []map[string]string{{"A": "x"}})
	lines := strings.Split(out, "\n")
	if lines[2] != "x |  " {
		t.Errorf("row: got %q, want %q", lines[2], "x |  ")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"under limit", "short", 10, "short"},
		{"at limit", "exactly10!", 10, "exactly10!"},
		{"over limit", "this string is too long", 10, "this st..."},
		{"multibyte runes", "ñañañañañañ", 8, "ñañañ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d): got %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncate_Idempotent(t *testing.T) {
	once := Truncate("a considerably longer string than the limit allows", 20)
	twice := Truncate(once, 20)
	if once != twice {
		t.Errorf("not idempotent: %q != %q", once, twice)
	}
}
