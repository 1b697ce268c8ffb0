package docscrape

// Row is an ordered sequence of column values.
type Row []string

// Table is a tabular report. Row 0 is always the header.
type Table []Row

// NewTable returns a table holding only the header row.
func NewTable(header ...string) Table {
	return Table{Row(header)}
}

// Append adds a data row.
func (t *Table) Append(values ...string) {
	*t = append(*t, Row(values))
}

// Header returns row 0, or nil for an empty table.
func (t Table) Header() Row {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Body returns the data rows following the header.
func (t Table) Body() []Row {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}
