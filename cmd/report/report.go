// Package report handles the single-file report command
package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/cmd/root"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/fileutils"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/report"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/viewer"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report <input-file>",
	Short: "Generate an enhanced report for one portfolio export",
	Long: `Generate an enhanced XLSX report for a single EquatePlus portfolio export.

Without -o the report is written next to the input file as
Enhanced-<filename>.xlsx. With -o pointing to a directory the report is
written there under the derived name; any other -o value is used as the
explicit output file path.

Example:
  portfolio-enhancer report PortfolioDetails.xlsx -o reports/`,
	Args: cobra.ExactArgs(1),
	RunE: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) error {
	log := root.GetLogger()
	log.Infof("Input portfolio export: %s", args[0])

	opts := report.Options{
		InputFile: args[0],
		TaxRates:  root.TaxRates(),
	}
	if output := root.SharedFlags.Output; output != "" {
		if fileutils.DirectoryExists(output) {
			opts.OutputDir = output
		} else {
			opts.OutputFile = output
		}
	}

	result, err := root.NewGenerator().Generate(opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s\n", result.InputFile, result.OutputFile)

	if root.SharedFlags.Open {
		if err := viewer.Open(result.OutputFile, log); err != nil {
			log.WithError(err).Warn("Could not open report in viewer")
		}
	}
	return nil
}
