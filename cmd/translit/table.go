package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one column of a CLI table. Width caps the cell width;
// 0 leaves it unbounded.
type column struct {
	Header string
	Right  bool
	Width  int
}

// Columns of pattern tables: a letter with its diacritics, and the
// keys typed for it.
var (
	letterColumn  = column{Header: "Letter", Width: 6}
	patternColumn = column{Header: "Typed as", Width: 12}
)

// renderTable renders rows under the given columns. Missing cells are left
// empty, surplus cells are dropped.
func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.Header
		align := text.AlignLeft
		if col.Right {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    col.Width,
		}
	}
	tw.AppendHeader(header)
	for _, cells := range rows {
		row := make(table.Row, len(columns))
		for i := range row {
			row[i] = ""
			if i < len(cells) {
				row[i] = cells[i]
			}
		}
		tw.AppendRow(row)
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
