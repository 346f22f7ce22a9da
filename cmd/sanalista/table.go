package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one table column. Counts are right-aligned.
type column struct {
	title string
	align text.Align
}

func leftColumn(title string) column  { return column{title: title, align: text.AlignLeft} }
func countColumn(title string) column { return column{title: title, align: text.AlignRight} }

// renderTable draws rows under columns in the rounded style. Short rows are
// padded with blanks. A non-empty footer is appended below the rows.
func renderTable(columns []column, rows [][]string, footer []string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(columns, func(i int) string { return columns[i].title }))
	for _, row := range rows {
		tw.AppendRow(toRow(columns, cellAt(row)))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(columns, cellAt(footer)))
	}

	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       col.align,
			AlignFooter: col.align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

func toRow(columns []column, cell func(int) string) table.Row {
	row := make(table.Row, len(columns))
	for i := range columns {
		row[i] = cell(i)
	}
	return row
}

func cellAt(values []string) func(int) string {
	return func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
}

// renderCounters renders the label/count pairs of a run summary.
func renderCounters(pairs [][2]string) string {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair[0], pair[1]})
	}
	return renderTable([]column{leftColumn("Counter"), countColumn("Value")}, rows, nil)
}
