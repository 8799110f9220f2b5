package xlsxdoc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
)

// WriterOptions controls the presentation extras applied to every sheet.
type WriterOptions struct {
	// TableStyle names an Excel table style, e.g. "TableStyleMedium2".
	// Empty disables table styling.
	TableStyle string
	// FreezeHeader keeps the header row visible while scrolling.
	FreezeHeader bool
	// AutoSizeColumns sizes columns to their content.
	AutoSizeColumns bool
}

// DefaultWriterOptions is the presentation used when nothing is configured.
var DefaultWriterOptions = WriterOptions{
	TableStyle:      "TableStyleMedium2",
	FreezeHeader:    true,
	AutoSizeColumns: true,
}

// Writer writes report sheets into one XLSX workbook. Formula cells (string
// values with a leading '=') are written as formula text so the spreadsheet
// application evaluates them on open.
type Writer struct {
	opts   WriterOptions
	logger logging.Logger
}

// NewWriter creates a workbook writer.
func NewWriter(opts WriterOptions, logger logging.Logger) *Writer {
	return &Writer{opts: opts, logger: logger}
}

// WriteWorkbook writes the sheets, in order, into a new workbook at path.
func (w *Writer) WriteWorkbook(path string, sheets []models.Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			w.logger.WithError(cerr).Warn("Failed to close workbook")
		}
	}()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the implicit first sheet instead of adding a new one.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", sheet.Name, err)
		}
		if err := w.writeSheet(f, sheet); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	w.logger.Debug("Workbook saved",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "sheets", Value: len(sheets)})
	return nil
}

func (w *Writer) writeSheet(f *excelize.File, sheet models.Sheet) error {
	widths := make([]int, len(sheet.Header))

	for i, header := range sheet.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
			return err
		}
		widths[i] = len(header)
	}
	if err := w.styleHeader(f, sheet); err != nil {
		return err
	}

	for r, row := range sheet.Rows {
		for c, cell := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := w.writeCell(f, sheet.Name, ref, cell.Value); err != nil {
				return err
			}
			if c < len(widths) {
				if l := displayWidth(cell.Value); l > widths[c] {
					widths[c] = l
				}
			}
		}
	}

	if w.opts.AutoSizeColumns {
		if err := w.sizeColumns(f, sheet.Name, widths); err != nil {
			return err
		}
	}
	if w.opts.FreezeHeader {
		if err := f.SetPanes(sheet.Name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}
	if w.opts.TableStyle != "" && len(sheet.Rows) > 0 {
		if err := w.addTable(f, sheet); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeCell(f *excelize.File, sheet, ref string, value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			// Blank means "no value applies"; leave the cell unset so the
			// IF-guards in dependent formulas see an empty cell.
			return nil
		}
		if strings.HasPrefix(v, "=") {
			return f.SetCellFormula(sheet, ref, v[1:])
		}
		return f.SetCellValue(sheet, ref, v)
	case decimal.Decimal:
		number, _ := v.Float64()
		return f.SetCellValue(sheet, ref, number)
	default:
		return f.SetCellValue(sheet, ref, v)
	}
}

func (w *Writer) styleHeader(f *excelize.File, sheet models.Sheet) error {
	if len(sheet.Header) == 0 {
		return nil
	}
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet.Name, "A1", last, styleID)
}

func (w *Writer) sizeColumns(f *excelize.File, sheet string, widths []int) error {
	for i, chars := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(chars) + 2
		if width < 10 {
			width = 10
		} else if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

// displayWidth estimates the rendered width of a cell in characters. Formula
// cells render a computed number, not their formula text, so they contribute
// a fixed nominal width.
func displayWidth(value interface{}) int {
	switch v := value.(type) {
	case string:
		if strings.HasPrefix(v, "=") {
			return 12
		}
		return len(v)
	case decimal.Decimal:
		return len(v.String())
	default:
		return len(fmt.Sprint(v))
	}
}

func (w *Writer) addTable(f *excelize.File, sheet models.Sheet) error {
	lastCell, err := excelize.CoordinatesToCellName(len(sheet.Header), len(sheet.Rows)+1)
	if err != nil {
		return err
	}
	showStripes := true
	return f.AddTable(sheet.Name, &excelize.Table{
		Range:           "A1:" + lastCell,
		Name:            tableName(sheet.Name),
		StyleName:       w.opts.TableStyle,
		ShowRowStripes:  &showStripes,
		ShowFirstColumn: false,
	})
}

// tableName derives a workbook-unique table name from the sheet name; table
// names must not contain spaces.
func tableName(sheet string) string {
	return strings.ReplaceAll(sheet, " ", "") + "Table"
}
