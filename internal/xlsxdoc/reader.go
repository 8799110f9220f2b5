// Package xlsxdoc implements the tabular document reader and writer of the
// report pipeline on top of excelize, with a gocsv-based reader for the CSV
// variant of the portfolio export.
package xlsxdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/normalizer"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

// headerRow is the 1-based row of the header labels in the XLSX export; the
// five rows above it are preamble.
const headerRow = 6

// requiredHeaders must all be present in the export for it to be processable.
var requiredHeaders = []string{
	normalizer.ColPlan,
	normalizer.ColContributionType,
	normalizer.ColPurchasePrice,
	normalizer.ColMarketPrice,
	normalizer.ColAvailableFrom,
	normalizer.ColShares,
}

// Reader reads portfolio export tables from XLSX or CSV files.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a document reader.
func NewReader(logger logging.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadTable reads the portfolio table from the given file, dispatching on the
// file extension. Date cells keep their raw serial text.
func (r *Reader) ReadTable(path string) (*models.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return r.readCSV(path)
	}
	return r.readXLSX(path)
}

func (r *Reader) readXLSX(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &reporterror.InvalidFormatError{FilePath: path, Msg: "workbook has no sheets"}
	}
	sheet := sheets[0]

	// Raw cell values keep date cells as their day-count serials instead of
	// the display format.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < headerRow {
		return nil, &reporterror.InvalidFormatError{
			FilePath: path,
			Msg:      fmt.Sprintf("expected header labels on row %d, sheet has only %d rows", headerRow, len(rows)),
		}
	}

	headers := trimAll(rows[headerRow-1])
	table := &models.Table{
		Headers:      headers,
		Rows:         dataRows(rows[headerRow:], len(headers)),
		FirstDataRow: headerRow + 1,
	}
	if err := validateHeaders(path, table); err != nil {
		return nil, err
	}

	r.logger.Debug("Read portfolio table",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "rows", Value: len(table.Rows)})
	return table, nil
}

// portfolioCSVRow maps the CSV variant of the export; the labels match the
// XLSX header row. Dates in this variant ship pre-formatted as ISO text.
type portfolioCSVRow struct {
	Plan             string `csv:"Plan"`
	ContributionType string `csv:"Contribution type"`
	PurchasePrice    string `csv:"Strike price / Cost basis"`
	MarketPrice      string `csv:"Market price"`
	AvailableFrom    string `csv:"Available from"`
	Shares           string `csv:"Allocated quantity"`
	AllocationDate   string `csv:"Allocation date"`
	ExpiryDate       string `csv:"Expiry date"`
}

func (r *Reader) readCSV(path string) (*models.Table, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("Failed to close CSV file")
		}
	}()

	var csvRows []*portfolioCSVRow
	if err := gocsv.UnmarshalFile(file, &csvRows); err != nil {
		return nil, &reporterror.InvalidFormatError{
			FilePath: path,
			Msg:      fmt.Sprintf("not a portfolio CSV export: %v", err),
		}
	}

	table := &models.Table{
		Headers: []string{
			normalizer.ColPlan,
			normalizer.ColContributionType,
			normalizer.ColPurchasePrice,
			normalizer.ColMarketPrice,
			normalizer.ColAvailableFrom,
			normalizer.ColShares,
			normalizer.ColAllocationDate,
			normalizer.ColExpiryDate,
		},
		FirstDataRow: 2, // the CSV variant has no preamble, header on line 1
	}
	for _, row := range csvRows {
		if row.Plan == "" && row.AvailableFrom == "" {
			continue
		}
		table.Rows = append(table.Rows, []string{
			row.Plan,
			row.ContributionType,
			row.PurchasePrice,
			row.MarketPrice,
			row.AvailableFrom,
			row.Shares,
			row.AllocationDate,
			row.ExpiryDate,
		})
	}

	r.logger.Debug("Read portfolio CSV table",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "rows", Value: len(table.Rows)})
	return table, nil
}

func validateHeaders(path string, table *models.Table) error {
	var missing []string
	for _, header := range requiredHeaders {
		if table.ColumnIndex(header) < 0 {
			missing = append(missing, header)
		}
	}
	if len(missing) > 0 {
		return &reporterror.InvalidFormatError{
			FilePath: path,
			Msg:      fmt.Sprintf("missing expected columns: %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}

func trimAll(cells []string) []string {
	trimmed := make([]string, len(cells))
	for i, c := range cells {
		trimmed[i] = strings.TrimSpace(c)
	}
	return trimmed
}

// dataRows pads short rows to the header width and drops fully empty trailing
// rows the sheet reader may emit.
func dataRows(raw [][]string, width int) [][]string {
	var rows [][]string
	for _, row := range raw {
		padded := make([]string, width)
		empty := true
		for i := 0; i < width && i < len(row); i++ {
			padded[i] = row[i]
			if strings.TrimSpace(row[i]) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, padded)
		}
	}
	return rows
}
