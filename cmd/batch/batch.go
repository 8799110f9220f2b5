// Package batch handles batch processing of portfolio exports
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/cmd/root"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/fileutils"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/report"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

// manifestName is the result manifest written into the output directory.
const manifestName = "manifest.yaml"

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch <input-file>...",
	Short: "Generate enhanced reports for many portfolio exports",
	Long: `Generate enhanced XLSX reports for several portfolio exports in one run.

Files are processed strictly one at a time in input order; the first error
aborts the run. With -o pointing to a directory every report is written
there; without -o each report lands next to its input file. A single
explicit output file is not valid in batch mode.

After a successful run a manifest.yaml with the input/output path pairs is
written into the output directory (when one was given).

Example:
  portfolio-enhancer batch exports/*.xlsx -o reports/`,
	Args: cobra.MinimumNArgs(1),
	RunE: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) error {
	log := root.GetLogger()
	log.Infof("Batch processing %d file(s)", len(args))

	outputDir, err := resolveOutputDir(root.SharedFlags.Output, len(args))
	if err != nil {
		return err
	}

	generator := root.NewGenerator()
	results := make([]report.Result, 0, len(args))
	for _, input := range args {
		result, err := generator.Generate(report.Options{
			InputFile: input,
			OutputDir: outputDir,
			TaxRates:  root.TaxRates(),
		})
		if err != nil {
			return err
		}
		results = append(results, *result)
		fmt.Printf("%s -> %s\n", result.InputFile, result.OutputFile)
	}

	if outputDir != "" {
		if err := writeManifest(outputDir, results, log); err != nil {
			return err
		}
	}

	if root.SharedFlags.Open {
		log.Warn("--open is ignored in batch mode")
	}

	log.Infof("Batch processing completed, %d report(s) generated", len(results))
	return nil
}

// resolveOutputDir validates the -o value for batch use. A path that exists
// as a file, or looks like a file path, cannot receive multiple reports.
func resolveOutputDir(output string, inputs int) (string, error) {
	if output == "" {
		return "", nil
	}
	if fileutils.FileExists(output) {
		return "", &reporterror.InvalidOutputError{
			Reason: fmt.Sprintf("batch mode needs an output directory, %s is a file", output),
		}
	}
	if !fileutils.DirectoryExists(output) && filepath.Ext(output) != "" && inputs > 0 {
		return "", &reporterror.InvalidOutputError{
			Reason: fmt.Sprintf("a single explicit output path cannot receive %d reports, pass a directory", inputs),
		}
	}
	if err := fileutils.EnsureDirectoryExists(output); err != nil {
		return "", err
	}
	return output, nil
}

func writeManifest(outputDir string, results []report.Result, log logging.Logger) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(outputDir, manifestName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	log.Info("Wrote result manifest", logging.Field{Key: "file", Value: path})
	return nil
}
