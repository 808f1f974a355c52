package emitter

import (
	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates/models"
	"github.com/xuri/excelize/v2"
)

// EmitWorkbook writes an xlsx template and returns its path.
// Sheets are created in order with auto-sized columns.
func EmitWorkbook(spec models.WorkbookSpec) (string, error) {
	if len(spec.Sheets) == 0 {
		return "", NewWriteError(spec.Path, "validate", ErrNoSheets)
	}
	for _, sheet := range spec.Sheets {
		if len(sheet.Rows) == 0 {
			return "", NewWriteError(spec.Path, "validate", ErrNoRows)
		}
	}

	if err := ensureDir(spec.Path); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	// A new file starts with a default sheet; reuse it for the first sheet.
	defaultSheet := f.GetSheetName(0)
	for i, sheet := range spec.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return "", NewWriteError(spec.Path, "sheet", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return "", NewWriteError(spec.Path, "sheet", err)
		}

		if err := writeSheet(f, sheet); err != nil {
			return "", NewWriteError(spec.Path, "sheet", err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(spec.Path); err != nil {
		return "", NewWriteError(spec.Path, "save", err)
	}

	return spec.Path, nil
}

// writeSheet writes the header and rows of a sheet and sizes its columns.
func writeSheet(f *excelize.File, sheet models.SheetSpec) error {
	rows := sheet.Rows
	if len(sheet.Header) > 0 {
		rows = append([][]string{sheet.Header}, rows...)
	}

	for rowIdx, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1) // 1-based
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return err
		}
	}

	for colIdx, width := range ColumnWidths(rows, sheet.MaxColWidth) {
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
			return err
		}
	}

	return nil
}
