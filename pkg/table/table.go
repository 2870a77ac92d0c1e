// Package table renders tabular data as plain text with borders, in the
// style of classic terminal tools. Column widths are computed from the
// visible width of each cell, so cells may contain ANSI escape sequences.
package table

import (
	"strings"

	"github.com/humane-cli/humane/internal/term"
)

// Format renders rows as a bordered plain-text table. When columnNames
// is non-empty it is rendered as a header row separated from the data.
// Rows shorter than the widest row are padded with empty cells.
func Format(rows [][]string, columnNames []string) string {
	columns := len(columnNames)
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return ""
	}

	widths := make([]int, columns)
	measure := func(row []string) {
		for i, cell := range row {
			if w := term.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(columnNames)
	for _, row := range rows {
		measure(row)
	}

	var out strings.Builder
	writeRow := func(row []string) {
		out.WriteString("|")
		for i := 0; i < columns; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			out.WriteString(" ")
			out.WriteString(cell)
			out.WriteString(strings.Repeat(" ", widths[i]-term.Width(cell)))
			out.WriteString(" |")
		}
		out.WriteString("\n")
	}

	divider := dividerLine(widths)
	out.WriteString(divider)
	if len(columnNames) > 0 {
		writeRow(columnNames)
		out.WriteString(divider)
	}
	for _, row := range rows {
		writeRow(row)
	}
	out.WriteString(divider)
	return out.String()
}

func dividerLine(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}
