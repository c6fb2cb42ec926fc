// Package parsererror defines the typed errors raised while ingesting and
// validating finance records.
package parsererror

import (
	"fmt"
	"strings"
)

// ParseError is a cell that could not be read as a number.
type ParseError struct {
	Source string // file path or "stdin"
	Row    int    // 1-based data row, 0 when not applicable
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
			e.Source, e.Row, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v", e.Source, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InputError is an interactive entry that was rejected. Reason is the
// message shown to the user before re-prompting.
type InputError struct {
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("rejected input '%s': %s", e.Value, e.Reason)
}

// InvalidFormatError means the input file does not have the expected shape.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid format in file '%s': %s. Expected: %s", e.FilePath, e.Msg, e.ExpectedFormat)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// DataExtractionError means a required field could not be found in an
// otherwise readable file.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}

// SchemaError is a month whose keys disagree with the declared schema.
type SchemaError struct {
	Month   string
	Kind    string // "expense" or "income"
	Missing []string
	Extra   []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Extra, ", "))
	}
	return fmt.Sprintf("month %s does not match %s schema: %s", e.Month, e.Kind, strings.Join(parts, "; "))
}
