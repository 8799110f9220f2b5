// Package models defines the core data structures shared across the report
// pipeline: the normalized portfolio record, the contribution-type enum and
// the ordered row representation used for sheet construction.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ContributionType categorizes how shares in a plan were acquired.
type ContributionType string

const (
	// LockedAward is an award without a purchase price; it carries no cost basis.
	LockedAward ContributionType = "Locked Award"
	// GrantedAward is an award with a purchase price.
	GrantedAward ContributionType = "Granted Award"
	// OwnContribution is a purchase fully funded by the employee.
	OwnContribution ContributionType = "Own Contribution"
	// CompanyMatch is an employer-funded matching contribution.
	CompanyMatch ContributionType = "Company Match"
)

// ContributionTypes lists all contribution types in the fixed order used by
// the Overview sheet.
var ContributionTypes = []ContributionType{
	LockedAward,
	GrantedAward,
	OwnContribution,
	CompanyMatch,
}

// PortfolioRecord is the canonical internal representation of one portfolio
// line item. Records are created once by the normalizer and are immutable
// thereafter.
type PortfolioRecord struct {
	Plan             string
	ContributionType ContributionType
	// PurchasePrice is zero for locked awards, meaning "no purchase price".
	PurchasePrice decimal.Decimal
	MarketPrice   decimal.Decimal
	Shares        decimal.Decimal
	// Date is the availability date in ISO yyyy-MM-dd form.
	Date string
}

// Validate checks the non-negativity invariants of the record.
func (r *PortfolioRecord) Validate() error {
	if r.PurchasePrice.IsNegative() {
		return fmt.Errorf("purchase price must not be negative: %s", r.PurchasePrice)
	}
	if r.MarketPrice.IsNegative() {
		return fmt.Errorf("market price must not be negative: %s", r.MarketPrice)
	}
	if r.Shares.IsNegative() {
		return fmt.Errorf("shares must not be negative: %s", r.Shares)
	}
	return nil
}

// TaxRates holds the two tax percentages supplied to a pipeline run.
// Values are percentages in [0, 100], not fractions.
type TaxRates struct {
	IncomePercentage       decimal.Decimal
	CapitalGainsPercentage decimal.Decimal
}

// Validate checks that both percentages are within [0, 100].
func (t TaxRates) Validate() error {
	hundred := decimal.NewFromInt(100)
	for name, v := range map[string]decimal.Decimal{
		"income tax":        t.IncomePercentage,
		"capital gains tax": t.CapitalGainsPercentage,
	} {
		if v.IsNegative() || v.GreaterThan(hundred) {
			return fmt.Errorf("%s percentage must be within [0, 100], got %s", name, v)
		}
	}
	return nil
}
