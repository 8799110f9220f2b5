package report

import (
	"path/filepath"
	"strings"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/fileutils"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/normalizer"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

// DefaultOutputPrefix is prepended to the source filename when no explicit
// output path is given.
const DefaultOutputPrefix = "Enhanced-"

// DocumentReader reads a tabular sheet from a source document, keeping date
// cells as raw serial text.
type DocumentReader interface {
	ReadTable(path string) (*models.Table, error)
}

// DocumentWriter writes named sheets, including formula cells, into one
// output workbook.
type DocumentWriter interface {
	WriteWorkbook(path string, sheets []models.Sheet) error
}

// Options parameterizes one report generation run.
type Options struct {
	InputFile string
	// OutputFile is an explicit output path. Empty means derive the path from
	// the input filename.
	OutputFile string
	// OutputDir receives derived output files; empty means the input file's
	// own directory.
	OutputDir string
	TaxRates  models.TaxRates
}

// Result reports the resolved path pair of one generated report.
type Result struct {
	InputFile  string `yaml:"input"`
	OutputFile string `yaml:"output"`
}

// Generator drives the report pipeline end-to-end for one input file at a
// time. Each run owns its working set exclusively; nothing is shared between
// files.
type Generator struct {
	reader DocumentReader
	writer DocumentWriter
	prefix string
	logger logging.Logger
}

// NewGenerator wires a generator from its reader and writer capabilities.
func NewGenerator(reader DocumentReader, writer DocumentWriter, logger logging.Logger) *Generator {
	return &Generator{
		reader: reader,
		writer: writer,
		prefix: DefaultOutputPrefix,
		logger: logger,
	}
}

// SetOutputPrefix overrides the filename prefix used for derived output paths.
func (g *Generator) SetOutputPrefix(prefix string) {
	if prefix != "" {
		g.prefix = prefix
	}
}

// Generate reads the input file, normalizes and sorts its rows, builds the
// Overview, Tax Rates, Detailed Data and Input Data sheets and writes them as
// one workbook. Output is all-or-nothing: any pre-existing file at the output
// path is removed before writing.
func (g *Generator) Generate(opts Options) (*Result, error) {
	if err := opts.TaxRates.Validate(); err != nil {
		return nil, err
	}
	if !fileutils.FileExists(opts.InputFile) {
		return nil, &reporterror.MissingInputError{Path: opts.InputFile}
	}

	log := g.logger.WithField("file", opts.InputFile)
	log.Info("Generating enhanced portfolio report")

	table, err := g.reader.ReadTable(opts.InputFile)
	if err != nil {
		return nil, err
	}

	records, err := normalizer.Normalize(table, g.logger)
	if err != nil {
		return nil, err
	}

	detail := BuildDetailSheet(records)
	lastDetailRow := detailDataStartRow + len(records) - 1
	sheets := []models.Sheet{
		BuildOverviewSheet(lastDetailRow),
		BuildTaxRatesSheet(opts.TaxRates),
		detail,
		BuildInputSheet(table),
	}

	outputPath, err := g.outputPath(opts)
	if err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(outputPath)); err != nil {
		return nil, err
	}
	// A half-written workbook from an aborted run is invalid; always start clean.
	if err := fileutils.RemoveIfExists(outputPath); err != nil {
		return nil, err
	}

	if err := g.writer.WriteWorkbook(outputPath, sheets); err != nil {
		return nil, err
	}

	inputAbs, err := fileutils.Absolute(opts.InputFile)
	if err != nil {
		return nil, err
	}
	outputAbs, err := fileutils.Absolute(outputPath)
	if err != nil {
		return nil, err
	}

	log.Info("Report written",
		logging.Field{Key: "output", Value: outputAbs},
		logging.Field{Key: "records", Value: len(records)})
	return &Result{InputFile: inputAbs, OutputFile: outputAbs}, nil
}

// outputPath resolves the output location: an explicit file wins; otherwise
// the prefixed source filename lands in the output dir or next to the source.
// Derived names always carry the .xlsx extension, also for CSV inputs.
func (g *Generator) outputPath(opts Options) (string, error) {
	if opts.OutputFile != "" {
		return opts.OutputFile, nil
	}

	base := filepath.Base(opts.InputFile)
	if ext := filepath.Ext(base); !strings.EqualFold(ext, ".xlsx") {
		base = strings.TrimSuffix(base, ext) + ".xlsx"
	}
	name := g.prefix + base

	dir := opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(opts.InputFile)
	}
	return filepath.Join(dir, name), nil
}
