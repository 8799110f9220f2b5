package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
)

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(0))
	assert.Equal(t, "B", ColumnLetter(1))
	assert.Equal(t, "M", ColumnLetter(12))
	assert.Equal(t, "AA", ColumnLetter(26))
}

func TestExpandSubstitutesLettersNotValues(t *testing.T) {
	// The placeholder names a column; it must resolve to that column's
	// letter, never to the column's value.
	row := models.Row{
		{Name: "A", Value: "x"},
		{Name: "B", Value: "{{A}}-{{index}}"},
	}

	expanded := Expand(row, 5)

	assert.Equal(t, "x", expanded[0].Value)
	assert.Equal(t, "A-5", expanded[1].Value)
}

func TestExpandIsIdempotentOnExpandedText(t *testing.T) {
	row := models.Row{
		{Name: "Shares", Value: "10"},
		{Name: "Value", Value: "=ROUND({{Shares}}{{index}}*2,2)"},
	}

	once := Expand(row, 3)
	assert.Equal(t, "=ROUND(A3*2,2)", once[1].Value)

	twice := Expand(once, 7)
	assert.Equal(t, once, twice, "expanded text has no tokens left to rewrite")
}

func TestExpandLeavesNonStringsAlone(t *testing.T) {
	row := models.Row{
		{Name: "Count", Value: 42},
		{Name: "Flag", Value: true},
		{Name: "Ref", Value: "{{Count}}{{index}}"},
	}

	expanded := Expand(row, 2)

	assert.Equal(t, 42, expanded[0].Value)
	assert.Equal(t, true, expanded[1].Value)
	assert.Equal(t, "A2", expanded[2].Value)
}

func TestExpandDoesNotMutateInput(t *testing.T) {
	row := models.Row{{Name: "X", Value: "{{X}}{{index}}"}}

	Expand(row, 9)

	assert.Equal(t, "{{X}}{{index}}", row[0].Value)
}

func TestExpandHandlesColumnNamesWithSpaces(t *testing.T) {
	row := models.Row{
		{Name: "Market Price", Value: "5"},
		{Name: "Value", Value: "={{Market Price}}{{index}}*2"},
	}

	expanded := Expand(row, 4)

	assert.Equal(t, "=A4*2", expanded[1].Value)
}

func TestExpandSheetNumbersRowsConsecutively(t *testing.T) {
	rows := []models.Row{
		{{Name: "N", Value: "row {{index}}"}},
		{{Name: "N", Value: "row {{index}}"}},
		{{Name: "N", Value: "row {{index}}"}},
	}

	expanded := ExpandSheet(rows, 2)

	assert.Equal(t, "row 2", expanded[0][0].Value)
	assert.Equal(t, "row 3", expanded[1][0].Value)
	assert.Equal(t, "row 4", expanded[2][0].Value)
}
