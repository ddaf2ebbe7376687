// Package render holds the output collaborators of the experiment writer:
// the tabular pretty-printer and the PNG plot saver.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table pretty-prints a rectangular dataset as a bordered multi-line block.
// Rows shorter than the header row are padded with empty cells.
func Table(headers []string, rows [][]string) string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= len(headers) {
			padded[i] = row
			continue
		}
		r := make([]string, len(headers))
		copy(r, row)
		padded[i] = r
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(padded...)

	return t.Render()
}
