package models

// Table is one tabular sheet as read from a source document: an ordered
// header row plus raw cell text per data row. Date cells are kept as their
// raw serial text so the normalizer controls decoding.
type Table struct {
	Headers []string
	Rows    [][]string
	// FirstDataRow is the 1-based physical row of the first data row in the
	// source sheet, used for error messages.
	FirstDataRow int
}

// ColumnIndex returns the 0-based position of the named column, or -1 if the
// table has no such header.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Value returns the raw cell text at the given 0-based data row for the named
// column. Missing columns and short rows yield the empty string.
func (t *Table) Value(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][idx]
}

// PhysicalRow converts a 0-based data row index into the 1-based physical row
// number of the source sheet.
func (t *Table) PhysicalRow(row int) int {
	return t.FirstDataRow + row
}
