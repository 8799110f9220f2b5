package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/cmd/batch"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/cmd/report"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/cmd/root"
	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/reporterror"
)

// Distinct exit codes per error class; scripts dispatch on them.
const (
	exitGeneric             = 1
	exitMissingInput        = 2
	exitInvalidOutput       = 3
	exitUnknownContribution = 4
)

func init() {
	// Load environment variables silently before any logging happens, then
	// set the global log level so every logger created later inherits it.
	loadEnvSilently()
	configureLogLevel()

	root.Init()
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global log level for all logrus instances
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy to distinct process exit codes.
func exitCode(err error) int {
	var missing *reporterror.MissingInputError
	if errors.As(err, &missing) {
		return exitMissingInput
	}
	var invalidOutput *reporterror.InvalidOutputError
	if errors.As(err, &invalidOutput) {
		return exitInvalidOutput
	}
	var unknownType *reporterror.UnknownContributionTypeError
	if errors.As(err, &unknownType) {
		return exitUnknownContribution
	}
	return exitGeneric
}
