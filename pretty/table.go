// Package pretty renders reports as aligned text tables using
// github.com/jedib0t/go-pretty.
package pretty

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/docscrape"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Ensure TableWriter implements docscrape.ReportWriter at compile time.
var _ docscrape.ReportWriter = (*TableWriter)(nil)

// TableWriter prints reports as left-aligned tables with the header row as
// column titles.
type TableWriter struct {
	w io.Writer
}

// NewTableWriter creates a new TableWriter writing to w.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

// WriteReport renders report and writes it followed by a newline.
func (p *TableWriter) WriteReport(_ context.Context, _ docscrape.Mode, report docscrape.Table) error {
	_, err := fmt.Fprintln(p.w, Render(report))
	return err
}

// Render formats report as a table string.
func Render(report docscrape.Table) string {
	t := table.NewWriter()

	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	header := report.Header()
	configs := make([]table.ColumnConfig, 0, len(header))
	for i := range header {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	t.SetColumnConfigs(configs)

	t.AppendHeader(toRow(header))
	for _, row := range report.Body() {
		t.AppendRow(toRow(row))
	}
	return t.Render()
}

func toRow(values docscrape.Row) table.Row {
	row := make(table.Row, 0, len(values))
	for _, v := range values {
		row = append(row, v)
	}
	return row
}
