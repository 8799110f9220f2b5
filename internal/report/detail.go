package report

import (
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/formula"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
)

// detailColumns fixes the column order of the Detailed Data sheet. The order
// determines the spreadsheet letters substituted into every formula template,
// so it must be identical for all rows.
var detailColumns = []string{
	ColDate,
	ColPlan,
	ColContributionType,
	ColShares,
	ColMarketPrice,
	ColValue,
	ColPurchasePrice,
	ColCostBasis,
	ColOwnCosts,
	ColTaxableGains,
	ColRealGains,
	ColEstimatedTax,
	ColNetProfit,
}

// detailDataStartRow is the sheet row of the first detail data row (row 1 is
// the header).
const detailDataStartRow = 2

// DetailColumnLetter returns the spreadsheet letter of the named Detailed Data
// column. It is used by the overview builder to address detail ranges from a
// different sheet.
func DetailColumnLetter(name string) string {
	for i, col := range detailColumns {
		if col == name {
			return formula.ColumnLetter(i)
		}
	}
	return ""
}

// BuildDetailSheet maps the normalized records, already sorted by date, into
// the Detailed Data sheet. Each record becomes one row of literal values plus
// formula cells implementing the computed-column dependency graph.
func BuildDetailSheet(records []models.PortfolioRecord) models.Sheet {
	rows := make([]models.Row, len(records))
	for i, record := range records {
		rows[i] = detailRow(record)
	}
	return models.Sheet{
		Name:   SheetDetail,
		Header: detailColumns,
		Rows:   formula.ExpandSheet(rows, detailDataStartRow),
	}
}

func detailRow(record models.PortfolioRecord) models.Row {
	// A zero purchase price means no cost basis applies; the cell stays blank
	// so the IF-guards of the downstream formulas short-circuit.
	var purchasePrice interface{} = ""
	if record.PurchasePrice.IsPositive() {
		purchasePrice = record.PurchasePrice
	}

	// The guard keeps Cost Basis blank exactly when Purchase Price is blank,
	// also after a user edits the purchase price cell in the generated file.
	costBasis := `=IF({{Purchase Price}}{{index}}="","",` +
		`ROUND({{Shares}}{{index}}*{{Purchase Price}}{{index}},2))`

	return models.Row{
		{Name: ColDate, Value: record.Date},
		{Name: ColPlan, Value: record.Plan},
		{Name: ColContributionType, Value: string(record.ContributionType)},
		{Name: ColShares, Value: record.Shares},
		{Name: ColMarketPrice, Value: record.MarketPrice},
		{Name: ColValue, Value: "=ROUND({{Shares}}{{index}}*{{Market Price}}{{index}},2)"},
		{Name: ColPurchasePrice, Value: purchasePrice},
		{Name: ColCostBasis, Value: costBasis},
		{Name: ColOwnCosts, Value: ownCostsFormula(record.ContributionType)},
		{Name: ColTaxableGains, Value: templateTaxableGains},
		{Name: ColRealGains, Value: templateRealGains},
		{Name: ColEstimatedTax, Value: templateEstimatedTax},
		{Name: ColNetProfit, Value: templateNetProfit},
	}
}

// ownCostsFormula selects the Own Costs expression per contribution type: a
// company match costs the employee only the income tax on the matched shares,
// a locked award costs nothing, everything else costs the full basis.
func ownCostsFormula(contributionType models.ContributionType) interface{} {
	switch contributionType {
	case models.CompanyMatch:
		return templateOwnCostsMatched
	case models.LockedAward:
		return ""
	default:
		return templateOwnCostsOwned
	}
}
