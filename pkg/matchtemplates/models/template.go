package models

// TemplateSpec describes a single delimited template file.
type TemplateSpec struct {
	// Path is the output file path.
	Path string
	// Delimiter is the field separator (',' or ';').
	Delimiter rune
	// Rows contains the sample matches written after the header.
	Rows []TemplateRow
	// Instructions contains legend rows appended after Rows (optional).
	Instructions []TemplateRow
}

// SheetSpec describes one worksheet of a workbook template.
type SheetSpec struct {
	// Name is the worksheet name.
	Name string
	// Header is written as the first row when non-empty.
	Header []string
	// Rows contains free-form rows; rows may differ in length.
	Rows [][]string
	// MaxColWidth caps the auto-sized column width.
	MaxColWidth float64
}

// WorkbookSpec describes a workbook template with one or more sheets.
type WorkbookSpec struct {
	// Path is the output file path.
	Path string
	// Sheets are written in order; the first one is active.
	Sheets []SheetSpec
}

// RowValues converts template rows to sheet rows.
func RowValues(rows []TemplateRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Values())
	}
	return out
}
