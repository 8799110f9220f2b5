// Package root contains the root command for the application
package root

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/config"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/models"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/report"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/xlsxdoc"
)

// CommonFlags represents the flags shared by the report and batch commands.
type CommonFlags struct {
	Output          string
	IncomeTax       float64
	CapitalGainsTax float64
	Open            bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds the common flag values accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "portfolio-enhancer",
		Short: "Generate enhanced XLSX reports from EquatePlus portfolio exports.",
		Long: `portfolio-enhancer reads an EquatePlus portfolio export (XLSX or CSV) and
produces an enhanced workbook with computed financial metrics: per-position
value, cost basis, unrealized gains, estimated tax and net profit, plus a
per-category overview. All derived columns are emitted as live spreadsheet
formulas so the generated file recalculates when its inputs are edited.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			// Config values back the flag defaults; explicit flags win.
			flags := cmd.Root().PersistentFlags()
			if !flags.Changed("income-tax") {
				SharedFlags.IncomeTax = cfg.Taxes.IncomePercentage
			}
			if !flags.Changed("capital-gains-tax") {
				SharedFlags.CapitalGainsTax = cfg.Taxes.CapitalGainsPercentage
			}
			if !flags.Changed("open") {
				SharedFlags.Open = cfg.Output.AutoOpen
			}
			return nil
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "",
		"Output file (report) or output directory (batch)")
	Cmd.PersistentFlags().Float64Var(&SharedFlags.IncomeTax, "income-tax", 42.0,
		"Income tax percentage in [0, 100]")
	Cmd.PersistentFlags().Float64Var(&SharedFlags.CapitalGainsTax, "capital-gains-tax", 26.375,
		"Capital gains tax percentage in [0, 100]")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Open, "open", false,
		"Open the generated report in the default viewer")
}

// GetLogger returns the configured logger behind the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// TaxRates builds the tax parameters for a pipeline run from the shared flags.
func TaxRates() models.TaxRates {
	return models.TaxRates{
		IncomePercentage:       decimal.NewFromFloat(SharedFlags.IncomeTax),
		CapitalGainsPercentage: decimal.NewFromFloat(SharedFlags.CapitalGainsTax),
	}
}

// NewGenerator wires a report generator from the loaded configuration.
func NewGenerator() *report.Generator {
	logger := GetLogger()

	writerOpts := xlsxdoc.DefaultWriterOptions
	if Cfg != nil {
		writerOpts = xlsxdoc.WriterOptions{
			TableStyle:      Cfg.Output.TableStyle,
			FreezeHeader:    Cfg.Output.FreezeHeader,
			AutoSizeColumns: Cfg.Output.AutoSizeColumns,
		}
	}

	generator := report.NewGenerator(
		xlsxdoc.NewReader(logger),
		xlsxdoc.NewWriter(writerOpts, logger),
		logger,
	)
	if Cfg != nil {
		generator.SetOutputPrefix(Cfg.Output.Prefix)
	}
	return generator
}
