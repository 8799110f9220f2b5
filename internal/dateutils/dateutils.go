// Package dateutils provides date-serial decoding for spreadsheet date cells.
//
// Dates in the portfolio export are stored as integer day counts relative to
// the spreadsheet epoch 1899-12-30. The convention retains serial 60 as the
// non-existent leap day 1900-02-29; that quirk is replicated here so decoded
// dates match what a spreadsheet application displays for the same serial.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the output layout for all decoded dates.
const DateLayoutISO = "2006-01-02"

// serialEpoch is the spreadsheet date epoch: serial 0 maps to this date.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// fakeLeapDay is what the host convention displays for serial 60.
const fakeLeapDay = "1900-02-29"

// FromSerial decodes a day-count serial into an ISO yyyy-MM-dd date string.
// Fractional parts (time of day) are truncated.
func FromSerial(serial float64) string {
	days := int(serial) // floor for the non-negative serials the export contains
	if days == 60 {
		return fakeLeapDay
	}
	return serialEpoch.AddDate(0, 0, days).Format(DateLayoutISO)
}

// FromSerialString decodes a serial held as cell text, e.g. "45000" or
// "45000.5". Returns an error if the text is not a number.
func FromSerialString(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	serial, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return "", fmt.Errorf("invalid date serial '%s': %w", raw, err)
	}
	if serial < 0 {
		return "", fmt.Errorf("invalid date serial '%s': must not be negative", raw)
	}
	return FromSerial(serial), nil
}

// IsISODate reports whether the string already is a yyyy-MM-dd date. The CSV
// variant of the export ships dates pre-formatted; those pass through the
// normalizer unchanged.
func IsISODate(s string) bool {
	if s == fakeLeapDay {
		return true
	}
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}
