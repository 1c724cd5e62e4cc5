package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates a workbook path that does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a named worksheet absent from its workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SchemaError represents input data that does not fit the expected
// portfolio layout.
type SchemaError struct {
	Sheet  string
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("schema error in sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("schema error in sheet %q (column %s): %v", e.Sheet, e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(sheet, column string, err error) *SchemaError {
	return &SchemaError{Sheet: sheet, Column: column, Err: err}
}
