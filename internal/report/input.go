package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/normalizer"
)

// inputDateColumns are the source columns holding date serials; the echo
// sheet reformats them to ISO text.
var inputDateColumns = map[string]bool{
	normalizer.ColAvailableFrom:  true,
	normalizer.ColAllocationDate: true,
	normalizer.ColExpiryDate:     true,
}

// BuildInputSheet echoes the raw source table into the Input Data sheet with
// the three date-serial columns reformatted to ISO text. Numeric cells become
// numbers again; everything else is copied verbatim.
func BuildInputSheet(table *models.Table) models.Sheet {
	rows := make([]models.Row, len(table.Rows))
	for i, raw := range table.Rows {
		row := make(models.Row, len(table.Headers))
		for j, header := range table.Headers {
			value := ""
			if j < len(raw) {
				value = raw[j]
			}
			row[j] = models.Cell{Name: header, Value: echoValue(header, value)}
		}
		rows[i] = row
	}
	return models.Sheet{
		Name:   SheetInput,
		Header: table.Headers,
		Rows:   rows,
	}
}

func echoValue(header, raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if inputDateColumns[header] {
		if date, err := normalizer.DecodeDate(trimmed); err == nil {
			return date
		}
		return trimmed
	}
	if number, err := decimal.NewFromString(trimmed); err == nil {
		return number
	}
	return trimmed
}
