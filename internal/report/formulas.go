// Package report builds the four sheets of the enhanced portfolio workbook:
// Overview, Tax Rates, Detailed Data and Input Data. Derived columns are
// emitted as formula templates (see the formula package) so the generated
// file stays live when recalculated in a spreadsheet application.
package report

// Sheet names, in workbook order.
const (
	SheetOverview = "Overview"
	SheetTaxRates = "Tax Rates"
	SheetDetail   = "Detailed Data"
	SheetInput    = "Input Data"
)

// Output column labels shared by the Detailed Data and Overview sheets.
const (
	ColDate             = "Date"
	ColPlan             = "Plan"
	ColContributionType = "Contribution Type"
	ColShares           = "Shares"
	ColMarketPrice      = "Market Price"
	ColValue            = "Value"
	ColPurchasePrice    = "Purchase Price"
	ColCostBasis        = "Cost Basis"
	ColOwnCosts         = "Own Costs"
	ColTaxableGains     = "Taxable Unrealized Gains"
	ColRealGains        = "Real Unrealized Gains"
	ColEstimatedTax     = "Estimated Tax"
	ColNetProfit        = "Estimated Net Profit"
	ColPercentageGain   = "Percentage Gain"
)

// Fixed cells on the Tax Rates sheet holding the derived rate fractions.
const (
	incomeTaxRateCell       = "'Tax Rates'!C2"
	capitalGainsTaxRateCell = "'Tax Rates'!C3"
)

// Formula templates shared by the detail and overview builders. Each template
// guards on a blank Cost Basis cell: a blank cost basis means "no purchase
// price applies" and every downstream column stays blank as well.
const (
	templateOwnCostsMatched = "=ROUND(" + incomeTaxRateCell + "*{{Cost Basis}}{{index}},2)"
	templateOwnCostsOwned   = "={{Cost Basis}}{{index}}"

	templateTaxableGains = `=IF({{Cost Basis}}{{index}}="","",ROUND({{Value}}{{index}}-{{Cost Basis}}{{index}},2))`
	templateRealGains    = `=IF({{Cost Basis}}{{index}}="","",ROUND({{Value}}{{index}}-{{Own Costs}}{{index}},2))`

	templateEstimatedTax = `=IF({{Taxable Unrealized Gains}}{{index}}="","",` +
		`IF({{Taxable Unrealized Gains}}{{index}}<0,0,` +
		`ROUND(` + capitalGainsTaxRateCell + `*{{Taxable Unrealized Gains}}{{index}},2)))`

	templateNetProfit = `=IF({{Cost Basis}}{{index}}="","",` +
		`ROUND({{Real Unrealized Gains}}{{index}}-{{Estimated Tax}}{{index}},2))`
)
