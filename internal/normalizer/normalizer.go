// Package normalizer converts raw portfolio export rows into normalized
// records. It applies contribution-type classification, exact decimal parsing
// and date-serial decoding, and sorts the resulting set by date.
package normalizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/dateutils"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

// Expected column labels of the portfolio export.
const (
	ColPlan             = "Plan"
	ColContributionType = "Contribution type"
	ColPurchasePrice    = "Strike price / Cost basis"
	ColMarketPrice      = "Market price"
	ColAvailableFrom    = "Available from"
	ColShares           = "Allocated quantity"
	ColAllocationDate   = "Allocation date"
	ColExpiryDate       = "Expiry date"
)

// Raw contribution-type labels recognized in the export.
const (
	rawAward        = "Award"
	rawPurchase     = "Purchase"
	rawCompanyMatch = "Company match"
)

// Classify maps a raw contribution-type label and purchase price to the
// internal contribution type. The second return value is false for labels
// outside the recognized set.
func Classify(raw string, purchasePrice decimal.Decimal) (models.ContributionType, bool) {
	switch strings.TrimSpace(raw) {
	case rawAward:
		if purchasePrice.IsZero() {
			return models.LockedAward, true
		}
		return models.GrantedAward, true
	case rawPurchase:
		return models.OwnContribution, true
	case rawCompanyMatch:
		return models.CompanyMatch, true
	default:
		return "", false
	}
}

// Normalize converts every data row of the table into a PortfolioRecord and
// returns the set sorted by date ascending. Any unrecognized contribution
// type aborts normalization; no partial result is returned.
func Normalize(table *models.Table, logger logging.Logger) ([]models.PortfolioRecord, error) {
	records := make([]models.PortfolioRecord, 0, len(table.Rows))
	for i := range table.Rows {
		record, err := normalizeRow(table, i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	SortByDate(records)

	logger.Info("Normalized portfolio records",
		logging.Field{Key: "count", Value: len(records)})
	return records, nil
}

// SortByDate sorts records by ascending ISO date. The sort is stable, so
// records sharing a date keep their original relative order.
func SortByDate(records []models.PortfolioRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}

func normalizeRow(table *models.Table, row int) (models.PortfolioRecord, error) {
	physicalRow := table.PhysicalRow(row)

	purchasePrice, err := parseDecimal(table, row, ColPurchasePrice)
	if err != nil {
		return models.PortfolioRecord{}, err
	}
	marketPrice, err := parseDecimal(table, row, ColMarketPrice)
	if err != nil {
		return models.PortfolioRecord{}, err
	}
	shares, err := parseDecimal(table, row, ColShares)
	if err != nil {
		return models.PortfolioRecord{}, err
	}

	rawType := table.Value(row, ColContributionType)
	contributionType, ok := Classify(rawType, purchasePrice)
	if !ok {
		return models.PortfolioRecord{}, &reporterror.UnknownContributionTypeError{
			Row:   physicalRow,
			Value: rawType,
		}
	}

	date, err := DecodeDate(table.Value(row, ColAvailableFrom))
	if err != nil {
		return models.PortfolioRecord{}, &reporterror.ParseError{
			Row:   physicalRow,
			Field: ColAvailableFrom,
			Value: table.Value(row, ColAvailableFrom),
			Err:   err,
		}
	}

	record := models.PortfolioRecord{
		Plan:             strings.TrimSpace(table.Value(row, ColPlan)),
		ContributionType: contributionType,
		PurchasePrice:    purchasePrice,
		MarketPrice:      marketPrice,
		Shares:           shares,
		Date:             date,
	}
	if err := record.Validate(); err != nil {
		return models.PortfolioRecord{}, &reporterror.ParseError{
			Row:   physicalRow,
			Field: "record",
			Value: record.Plan,
			Err:   err,
		}
	}
	return record, nil
}

// DecodeDate turns a raw date cell into an ISO date. XLSX cells hold the
// day-count serial; the CSV variant ships dates already in ISO form.
func DecodeDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if dateutils.IsISODate(trimmed) {
		return trimmed, nil
	}
	return dateutils.FromSerialString(trimmed)
}

func parseDecimal(table *models.Table, row int, column string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(table.Value(row, column))
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &reporterror.ParseError{
			Row:   table.PhysicalRow(row),
			Field: column,
			Value: raw,
			Err:   fmt.Errorf("not a decimal number: %w", err),
		}
	}
	return value, nil
}
