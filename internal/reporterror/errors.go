// Package reporterror defines the error taxonomy of the report pipeline.
// Errors carry enough context to identify the offending file or row; the
// process exit code is decided by the caller, not here.
package reporterror

import "fmt"

// MissingInputError indicates that an input path does not resolve to an
// existing file. Processing of that file aborts without writing any output.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file does not exist: %s", e.Path)
}

// UnknownContributionTypeError indicates that a raw contribution-type value
// outside the recognized labels was encountered. The row index is the 1-based
// physical row in the source sheet.
type UnknownContributionTypeError struct {
	Row   int
	Value string
}

func (e *UnknownContributionTypeError) Error() string {
	return fmt.Sprintf("row %d: unknown contribution type '%s'", e.Row, e.Value)
}

// InvalidOutputError indicates an output-path specification that cannot be
// honored, e.g. a single explicit output file combined with multiple inputs.
type InvalidOutputError struct {
	Reason string
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("invalid output specification: %s", e.Reason)
}

// ParseError represents a failure to parse a single field of an input row.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s='%s': %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError indicates that the input file does not conform to the
// expected portfolio export layout.
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s", e.FilePath, e.Msg)
}
