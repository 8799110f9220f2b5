package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/normalizer"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

// fakeReader serves a fixed table regardless of path.
type fakeReader struct {
	table *models.Table
	err   error
}

func (r *fakeReader) ReadTable(string) (*models.Table, error) {
	return r.table, r.err
}

// fakeWriter captures the sheets instead of writing a workbook.
type fakeWriter struct {
	path   string
	sheets []models.Sheet
}

func (w *fakeWriter) WriteWorkbook(path string, sheets []models.Sheet) error {
	w.path = path
	w.sheets = sheets
	return nil
}

func defaultRates() models.TaxRates {
	return models.TaxRates{
		IncomePercentage:       decimal.RequireFromString("42"),
		CapitalGainsPercentage: decimal.RequireFromString("26.375"),
	}
}

// testTable holds three records: a locked award and a company match on
// 2024-01-01 around a granted award on 2023-06-01.
func testTable() *models.Table {
	return &models.Table{
		Headers: []string{
			normalizer.ColPlan, normalizer.ColContributionType,
			normalizer.ColPurchasePrice, normalizer.ColMarketPrice,
			normalizer.ColAvailableFrom, normalizer.ColShares,
			normalizer.ColAllocationDate, normalizer.ColExpiryDate,
		},
		Rows: [][]string{
			{"Plan A", "Award", "0", "5", "45292", "10", "45000", "46000"},
			{"Plan B", "Award", "2", "5", "45078", "5", "45000", "46000"},
			{"Plan C", "Company match", "3", "5", "45292", "8", "45000", "46000"},
		},
		FirstDataRow: 7,
	}
}

// existingInput creates a dummy input file; Generate only checks existence,
// the fake reader serves the actual table.
func existingInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "PortfolioDetails.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0600))
	return path
}

func newTestGenerator(table *models.Table) (*Generator, *fakeWriter) {
	writer := &fakeWriter{}
	generator := NewGenerator(&fakeReader{table: table}, writer, &logging.MockLogger{})
	return generator, writer
}

func TestGenerateEndToEnd(t *testing.T) {
	generator, writer := newTestGenerator(testTable())
	input := existingInput(t)

	result, err := generator.Generate(Options{InputFile: input, TaxRates: defaultRates()})
	require.NoError(t, err)

	require.Len(t, writer.sheets, 4)
	assert.Equal(t, SheetOverview, writer.sheets[0].Name)
	assert.Equal(t, SheetTaxRates, writer.sheets[1].Name)
	assert.Equal(t, SheetDetail, writer.sheets[2].Name)
	assert.Equal(t, SheetInput, writer.sheets[3].Name)

	detail := writer.sheets[2]
	require.Len(t, detail.Rows, 3)
	assert.Equal(t, "2023-06-01", detail.Rows[0].Get(ColDate), "oldest record first")
	assert.Equal(t, "Plan B", detail.Rows[0].Get(ColPlan))
	assert.Equal(t, "2024-01-01", detail.Rows[1].Get(ColDate))
	assert.Equal(t, "2024-01-01", detail.Rows[2].Get(ColDate))

	// Granted Awards shares must aggregate exactly the detail rows 2-4.
	granted := writer.sheets[0].Rows[1]
	assert.Equal(t,
		`=SUMIF('Detailed Data'!C2:C4,"Granted Award",'Detailed Data'!D2:D4)`,
		granted.Get(ColShares))

	// The input echo keeps all rows in source order with ISO dates.
	echo := writer.sheets[3]
	require.Len(t, echo.Rows, 3)
	assert.Equal(t, "Plan A", echo.Rows[0].Get(normalizer.ColPlan))
	assert.Equal(t, "2024-01-01", echo.Rows[0].Get(normalizer.ColAvailableFrom))
	assert.Equal(t, "2023-03-15", echo.Rows[0].Get(normalizer.ColAllocationDate))
	assert.Equal(t, "2025-12-09", echo.Rows[0].Get(normalizer.ColExpiryDate))

	assert.True(t, filepath.IsAbs(result.InputFile))
	assert.True(t, filepath.IsAbs(result.OutputFile))
	assert.Equal(t, "Enhanced-PortfolioDetails.xlsx", filepath.Base(result.OutputFile))
	assert.Equal(t, filepath.Dir(result.InputFile), filepath.Dir(result.OutputFile),
		"derived output lands next to the source")
}

func TestGenerateMissingInput(t *testing.T) {
	generator, _ := newTestGenerator(testTable())

	_, err := generator.Generate(Options{
		InputFile: filepath.Join(t.TempDir(), "nope.xlsx"),
		TaxRates:  defaultRates(),
	})

	var missing *reporterror.MissingInputError
	require.ErrorAs(t, err, &missing)
}

func TestGenerateInvalidTaxRates(t *testing.T) {
	generator, _ := newTestGenerator(testTable())

	_, err := generator.Generate(Options{
		InputFile: existingInput(t),
		TaxRates: models.TaxRates{
			IncomePercentage:       decimal.RequireFromString("142"),
			CapitalGainsPercentage: decimal.RequireFromString("26.375"),
		},
	})
	assert.Error(t, err)
}

func TestGenerateAbortsOnUnknownContributionType(t *testing.T) {
	table := testTable()
	table.Rows[1][1] = "Dividend"
	generator, writer := newTestGenerator(table)

	_, err := generator.Generate(Options{InputFile: existingInput(t), TaxRates: defaultRates()})

	var unknownType *reporterror.UnknownContributionTypeError
	require.ErrorAs(t, err, &unknownType)
	assert.Equal(t, 8, unknownType.Row)
	assert.Empty(t, writer.path, "no output may be written for a failed file")
}

func TestGenerateOutputPathModes(t *testing.T) {
	outDir := t.TempDir()
	explicit := filepath.Join(outDir, "custom.xlsx")

	tests := []struct {
		name     string
		opts     Options
		expected func(input string) string
	}{
		{
			name: "explicit output file wins",
			opts: Options{OutputFile: explicit, OutputDir: outDir},
			expected: func(string) string {
				return explicit
			},
		},
		{
			name: "output dir gets the derived name",
			opts: Options{OutputDir: outDir},
			expected: func(string) string {
				return filepath.Join(outDir, "Enhanced-PortfolioDetails.xlsx")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			generator, writer := newTestGenerator(testTable())
			input := existingInput(t)
			tc.opts.InputFile = input
			tc.opts.TaxRates = defaultRates()

			result, err := generator.Generate(tc.opts)
			require.NoError(t, err)

			expectedAbs, err := filepath.Abs(tc.expected(input))
			require.NoError(t, err)
			assert.Equal(t, expectedAbs, result.OutputFile)
			assert.Equal(t, tc.expected(input), writer.path)
		})
	}
}

func TestGenerateDerivedNameForCSVInput(t *testing.T) {
	generator, _ := newTestGenerator(testTable())
	dir := t.TempDir()
	input := filepath.Join(dir, "PortfolioDetails.csv")
	require.NoError(t, os.WriteFile(input, []byte("stub"), 0600))

	result, err := generator.Generate(Options{InputFile: input, TaxRates: defaultRates()})
	require.NoError(t, err)
	assert.Equal(t, "Enhanced-PortfolioDetails.xlsx", filepath.Base(result.OutputFile))
}

func TestGenerateRemovesPreexistingOutput(t *testing.T) {
	generator, writer := newTestGenerator(testTable())
	dir := t.TempDir()
	input := filepath.Join(dir, "PortfolioDetails.xlsx")
	require.NoError(t, os.WriteFile(input, []byte("stub"), 0600))

	stale := filepath.Join(dir, "Enhanced-PortfolioDetails.xlsx")
	require.NoError(t, os.WriteFile(stale, []byte("half-written"), 0600))

	_, err := generator.Generate(Options{InputFile: input, TaxRates: defaultRates()})
	require.NoError(t, err)

	// The fake writer does not create files, so the stale file being gone
	// proves the generator removed it before writing.
	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, stale, writer.path)
}

func TestSetOutputPrefix(t *testing.T) {
	generator, _ := newTestGenerator(testTable())
	generator.SetOutputPrefix("Report-")
	input := existingInput(t)

	result, err := generator.Generate(Options{InputFile: input, TaxRates: defaultRates()})
	require.NoError(t, err)
	assert.Equal(t, "Report-PortfolioDetails.xlsx", filepath.Base(result.OutputFile))
}
