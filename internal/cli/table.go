package cli

import (
	"strings"
)

// Table is a simple text table formatter with dynamic column widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded to the header count;
// extra cells are dropped.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)

	var result strings.Builder
	cells := make([]string, len(t.headers))

	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	result.WriteString(strings.Join(cells, sep))
	result.WriteString("\n")

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(cells, sep))
	result.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			cells[i] = padRight(cell, widths[i])
		}
		result.WriteString(strings.Join(cells, sep))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
