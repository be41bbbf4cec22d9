// Package report renders read-only text views of the catalog for operators.
package report

import (
	"strconv"

	"cinema-ticketing/internal/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ReservedMark is printed in place of a reserved seat's column number.
const ReservedMark = "."

// RenderPlan draws a seat grid with rows labelled 1..N. Free seats show their
// column number and reserved seats show ReservedMark.
func RenderPlan(title string, grid *catalog.SeatGrid) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle("%s", title)
	}

	header := table.Row{"row"}
	for c := 1; c <= grid.Columns(); c++ {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for r, cells := range grid.Cells() {
		row := table.Row{r + 1}
		for c, taken := range cells {
			if taken {
				row = append(row, ReservedMark)
			} else {
				row = append(row, strconv.Itoa(c+1))
			}
		}
		t.AppendRow(row)
	}

	return t.Render()
}
