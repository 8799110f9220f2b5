// Package formula expands symbolic formula templates into concrete
// spreadsheet formula text.
//
// Business formulas are authored once as templates containing two kinds of
// placeholders: {{index}}, which resolves to the row's 1-based sheet row
// number, and {{ColumnName}}, which resolves to the spreadsheet letter of the
// named column within the row's own declared column order. Expansion is a pure
// rewrite of string cells; non-string values pass through unchanged.
package formula

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
)

// IndexToken is the placeholder for the row's sheet row number.
const IndexToken = "{{index}}"

// ColumnLetter returns the spreadsheet letter for the 0-based column position.
func ColumnLetter(position int) string {
	name, err := excelize.ColumnNumberToName(position + 1)
	if err != nil {
		// position is non-negative, so this cannot happen
		return ""
	}
	return name
}

// Expand rewrites every string-valued cell of the row, substituting
// {{index}} with the given 1-based row number and every {{ColumnName}} with
// that column's letter. Substitution is a single pass, so already-expanded
// text is left alone.
func Expand(row models.Row, rowNumber int) models.Row {
	pairs := make([]string, 0, 2*(len(row)+1))
	pairs = append(pairs, IndexToken, strconv.Itoa(rowNumber))
	for i, cell := range row {
		pairs = append(pairs, "{{"+cell.Name+"}}", ColumnLetter(i))
	}
	replacer := strings.NewReplacer(pairs...)

	expanded := row.Clone()
	for i, cell := range expanded {
		if text, ok := cell.Value.(string); ok {
			expanded[i].Value = replacer.Replace(text)
		}
	}
	return expanded
}

// ExpandSheet expands a sequence of rows sharing one start index: the first
// row is numbered startIndex, each following row one higher. With the header
// occupying sheet row 1, data sheets use startIndex 2.
func ExpandSheet(rows []models.Row, startIndex int) []models.Row {
	expanded := make([]models.Row, len(rows))
	for i, row := range rows {
		expanded[i] = Expand(row, startIndex+i)
	}
	return expanded
}
