package models

// Cell is one (column name, value) pair of an output row. Values may be
// strings (including formula templates), decimals or any other scalar the
// document writer understands.
type Cell struct {
	Name  string
	Value interface{}
}

// Row is an ordered sequence of cells. The order is significant: the Nth cell
// of a row maps to the Nth spreadsheet column letter, so all rows of one sheet
// must declare their cells in identical order.
type Row []Cell

// Names returns the column names in declaration order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}
	return names
}

// Values returns the cell values in declaration order.
func (r Row) Values() []interface{} {
	values := make([]interface{}, len(r))
	for i, c := range r {
		values[i] = c.Value
	}
	return values
}

// Get returns the value of the named cell, or nil if the row has no such column.
func (r Row) Get(name string) interface{} {
	for _, c := range r {
		if c.Name == name {
			return c.Value
		}
	}
	return nil
}

// Clone returns a copy of the row that can be modified without affecting the
// original. Cell values are copied as-is.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	copy(clone, r)
	return clone
}
