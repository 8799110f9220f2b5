package report

import (
	"fmt"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/formula"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
)

// overviewColumns fixes the column order of the Overview sheet.
var overviewColumns = []string{
	ColContributionType,
	ColShares,
	ColValue,
	ColCostBasis,
	ColOwnCosts,
	ColTaxableGains,
	ColRealGains,
	ColEstimatedTax,
	ColNetProfit,
	ColPercentageGain,
}

// overviewDataStartRow is the sheet row of the first category row.
const overviewDataStartRow = 2

// overviewCategoryLabels maps each contribution type to its Overview row
// label, in the fixed sheet order.
var overviewCategoryLabels = map[models.ContributionType]string{
	models.LockedAward:     "Locked Awards",
	models.GrantedAward:    "Granted Awards",
	models.OwnContribution: "Own Contributions",
	models.CompanyMatch:    "Company Matches",
}

// totalRowLabel names the grand-total row. Locked awards carry no cost basis
// and are excluded from the total.
const totalRowLabel = "All Except Locked Awards"

// BuildOverviewSheet produces one roll-up row per contribution type plus the
// grand-total row. Category rows aggregate the Detailed Data sheet over the
// range [2, lastDetailRow] via SUMIF on the category label; the total row sums
// the non-locked category rows positionally.
func BuildOverviewSheet(lastDetailRow int) models.Sheet {
	rows := make([]models.Row, 0, len(models.ContributionTypes)+1)
	for _, contributionType := range models.ContributionTypes {
		rows = append(rows, categoryRow(contributionType, lastDetailRow))
	}
	rows = append(rows, totalRow(len(models.ContributionTypes)))

	return models.Sheet{
		Name:   SheetOverview,
		Header: overviewColumns,
		Rows:   formula.ExpandSheet(rows, overviewDataStartRow),
	}
}

// detailRange renders a same-column range of the Detailed Data sheet, e.g.
// 'Detailed Data'!C2:C14.
func detailRange(column string, lastDetailRow int) string {
	letter := DetailColumnLetter(column)
	return fmt.Sprintf("'%s'!%s%d:%s%d", SheetDetail, letter, detailDataStartRow, letter, lastDetailRow)
}

// sumIf aggregates a Detailed Data column over the rows matching the category
// label.
func sumIf(label string, column string, lastDetailRow int) string {
	return fmt.Sprintf(`=SUMIF(%s,"%s",%s)`,
		detailRange(ColContributionType, lastDetailRow), label, detailRange(column, lastDetailRow))
}

func categoryRow(contributionType models.ContributionType, lastDetailRow int) models.Row {
	// The detail rows carry the singular contribution-type label; the overview
	// row itself is labeled with the plural form.
	filterLabel := string(contributionType)

	// A single market price per file is assumed; the first detail row's price
	// stands in for the whole category.
	firstMarketPrice := fmt.Sprintf("'%s'!%s%d",
		SheetDetail, DetailColumnLetter(ColMarketPrice), detailDataStartRow)

	var costBasis interface{} = ""
	if contributionType != models.LockedAward {
		costBasis = sumIf(filterLabel, ColCostBasis, lastDetailRow)
	}

	percentageGain := `=IF({{Cost Basis}}{{index}}="","",` +
		`ROUND({{Estimated Net Profit}}{{index}}/{{Own Costs}}{{index}}*100,2))`

	return models.Row{
		{Name: ColContributionType, Value: overviewCategoryLabels[contributionType]},
		{Name: ColShares, Value: sumIf(filterLabel, ColShares, lastDetailRow)},
		{Name: ColValue, Value: fmt.Sprintf("=ROUND({{Shares}}{{index}}*%s,2)", firstMarketPrice)},
		{Name: ColCostBasis, Value: costBasis},
		{Name: ColOwnCosts, Value: ownCostsFormula(contributionType)},
		{Name: ColTaxableGains, Value: templateTaxableGains},
		{Name: ColRealGains, Value: templateRealGains},
		{Name: ColEstimatedTax, Value: templateEstimatedTax},
		{Name: ColNetProfit, Value: templateNetProfit},
		{Name: ColPercentageGain, Value: percentageGain},
	}
}

// totalRow sums the category rows except the first (Locked Awards). With the
// four category rows on sheet rows 2-5 the summed span is rows 3-5.
func totalRow(categoryCount int) models.Row {
	firstSummed := overviewDataStartRow + 1
	lastSummed := overviewDataStartRow + categoryCount - 1
	sum := func(column string) string {
		return fmt.Sprintf("=SUM({{%s}}%d:{{%s}}%d)", column, firstSummed, column, lastSummed)
	}

	return models.Row{
		{Name: ColContributionType, Value: totalRowLabel},
		{Name: ColShares, Value: sum(ColShares)},
		{Name: ColValue, Value: sum(ColValue)},
		{Name: ColCostBasis, Value: sum(ColCostBasis)},
		{Name: ColOwnCosts, Value: sum(ColOwnCosts)},
		{Name: ColTaxableGains, Value: sum(ColTaxableGains)},
		{Name: ColRealGains, Value: sum(ColRealGains)},
		{Name: ColEstimatedTax, Value: sum(ColEstimatedTax)},
		{Name: ColNetProfit, Value: sum(ColNetProfit)},
		{Name: ColPercentageGain, Value: "=ROUND({{Estimated Net Profit}}{{index}}/{{Own Costs}}{{index}}*100,2)"},
	}
}
