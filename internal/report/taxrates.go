package report

import (
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/formula"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
)

var taxRateColumns = []string{"Name", "Percentage", "Rate"}

// BuildTaxRatesSheet emits the two tax-rate input rows. The percentage cells
// hold the supplied values; the rate column derives the fraction via formula
// so edits to a percentage recalculate every dependent cell in the workbook.
// Row positions are fixed: Income on sheet row 2, Capital Gains on row 3
// (referenced cross-sheet by the detail and overview formulas).
func BuildTaxRatesSheet(rates models.TaxRates) models.Sheet {
	rows := []models.Row{
		{
			{Name: "Name", Value: "Income"},
			{Name: "Percentage", Value: rates.IncomePercentage},
			{Name: "Rate", Value: "={{Percentage}}{{index}}/100"},
		},
		{
			{Name: "Name", Value: "Capital Gains"},
			{Name: "Percentage", Value: rates.CapitalGainsPercentage},
			{Name: "Rate", Value: "={{Percentage}}{{index}}/100"},
		},
	}
	return models.Sheet{
		Name:   SheetTaxRates,
		Header: taxRateColumns,
		Rows:   formula.ExpandSheet(rows, 2),
	}
}
