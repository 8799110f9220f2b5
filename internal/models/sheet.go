package models

// Sheet is one named output sheet: a header row plus fully expanded data rows.
// The header carries the column order even when the sheet has no data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   []Row
}
