// Package emitter writes match templates to delimited text and xlsx files.
package emitter

import (
	"errors"
	"fmt"
)

// ErrNoRows indicates a template or sheet without any rows.
var ErrNoRows = errors.New("template has no rows")

// ErrNoSheets indicates a workbook without any sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrInvalidDelimiter indicates a delimiter other than comma or semicolon.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// WriteError represents a failure to produce a template file.
type WriteError struct {
	Path string
	Op   string // "validate", "mkdir", "create", "write", "close", "sheet", "save"
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path, op string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
