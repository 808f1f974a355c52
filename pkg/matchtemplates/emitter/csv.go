package emitter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates/models"
)

// EmitCSV writes a delimited template and returns its path.
// The parent directory is created if missing and an existing file is overwritten.
func EmitCSV(spec models.TemplateSpec) (string, error) {
	if len(spec.Rows) == 0 {
		return "", NewWriteError(spec.Path, "validate", ErrNoRows)
	}
	if spec.Delimiter != ',' && spec.Delimiter != ';' {
		return "", NewWriteError(spec.Path, "validate", fmt.Errorf("%w: %q", ErrInvalidDelimiter, spec.Delimiter))
	}

	if err := ensureDir(spec.Path); err != nil {
		return "", err
	}

	f, err := os.Create(spec.Path)
	if err != nil {
		return "", NewWriteError(spec.Path, "create", err)
	}

	w := csv.NewWriter(f)
	w.Comma = spec.Delimiter
	w.UseCRLF = true

	records := make([][]string, 0, 1+len(spec.Rows)+len(spec.Instructions))
	records = append(records, models.FieldNames)
	records = append(records, models.RowValues(spec.Rows)...)
	records = append(records, models.RowValues(spec.Instructions)...)

	// WriteAll flushes and reports the first write error.
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return "", NewWriteError(spec.Path, "write", err)
	}
	if err := f.Close(); err != nil {
		return "", NewWriteError(spec.Path, "close", err)
	}

	return spec.Path, nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewWriteError(path, "mkdir", err)
	}
	return nil
}
