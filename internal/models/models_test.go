package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRecordValidate(t *testing.T) {
	valid := PortfolioRecord{
		Plan:             "Share Purchase Plan",
		ContributionType: OwnContribution,
		PurchasePrice:    decimal.RequireFromString("10.50"),
		MarketPrice:      decimal.RequireFromString("12.00"),
		Shares:           decimal.RequireFromString("3.25"),
		Date:             "2024-01-01",
	}
	assert.NoError(t, valid.Validate())

	negativePrice := valid
	negativePrice.PurchasePrice = decimal.RequireFromString("-1")
	assert.Error(t, negativePrice.Validate())

	negativeMarket := valid
	negativeMarket.MarketPrice = decimal.RequireFromString("-0.01")
	assert.Error(t, negativeMarket.Validate())

	negativeShares := valid
	negativeShares.Shares = decimal.RequireFromString("-3")
	assert.Error(t, negativeShares.Validate())
}

func TestTaxRatesValidate(t *testing.T) {
	tests := []struct {
		name    string
		income  string
		capital string
		wantErr bool
	}{
		{name: "typical rates", income: "42", capital: "26.375", wantErr: false},
		{name: "zero rates", income: "0", capital: "0", wantErr: false},
		{name: "boundary 100", income: "100", capital: "100", wantErr: false},
		{name: "negative income", income: "-1", capital: "25", wantErr: true},
		{name: "capital above 100", income: "40", capital: "100.01", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rates := TaxRates{
				IncomePercentage:       decimal.RequireFromString(tc.income),
				CapitalGainsPercentage: decimal.RequireFromString(tc.capital),
			}
			err := rates.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContributionTypesOrder(t *testing.T) {
	require.Equal(t, []ContributionType{
		LockedAward,
		GrantedAward,
		OwnContribution,
		CompanyMatch,
	}, ContributionTypes)
}

func TestRow(t *testing.T) {
	row := Row{
		{Name: "Date", Value: "2024-01-01"},
		{Name: "Shares", Value: decimal.RequireFromString("2")},
	}

	assert.Equal(t, []string{"Date", "Shares"}, row.Names())
	assert.Equal(t, "2024-01-01", row.Get("Date"))
	assert.Nil(t, row.Get("Missing"))

	values := row.Values()
	require.Len(t, values, 2)
	assert.Equal(t, "2024-01-01", values[0])

	clone := row.Clone()
	clone[0].Value = "changed"
	assert.Equal(t, "2024-01-01", row[0].Value)
}

func TestTable(t *testing.T) {
	table := Table{
		Headers:      []string{"Plan", "Contribution type"},
		Rows:         [][]string{{"SPP", "Purchase"}, {"SPP"}},
		FirstDataRow: 7,
	}

	assert.Equal(t, 1, table.ColumnIndex("Contribution type"))
	assert.Equal(t, -1, table.ColumnIndex("Unknown"))
	assert.Equal(t, "Purchase", table.Value(0, "Contribution type"))
	assert.Equal(t, "", table.Value(1, "Contribution type"), "short rows read as empty")
	assert.Equal(t, "", table.Value(5, "Plan"), "out of range rows read as empty")
	assert.Equal(t, 7, table.PhysicalRow(0))
	assert.Equal(t, 9, table.PhysicalRow(2))
}
