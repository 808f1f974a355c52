package matchtemplates

import (
	"path/filepath"

	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates/emitter"
	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates/models"
)

// Template file and sheet names.
const (
	CommaFile             = "matches_template_comma.csv"
	SemicolonFile         = "matches_template_semicolon.csv"
	InstructionsFile      = "matches_template_with_instructions.csv"
	FormattedFile         = "matches_properly_formatted.csv"
	SampleWorkbookFile    = "sample_matches_template.xlsx"
	InstructionsWorkbook  = "matches_import_template_with_instructions.xlsx"
	DataSheetName         = "Zápasy"
	InstructionsSheetName = "Instrukce"
	SampleDataSheetName   = "Vzorová data"
)

// Column width caps for workbook sheets.
const (
	dataColWidth         = 50
	instructionsColWidth = 80
)

// Result describes a generated template file.
type Result struct {
	// Path is the written file path.
	Path string
	// Description is a short human-readable label.
	Description string
}

// CSVTemplate pairs a delimited template with its description.
type CSVTemplate struct {
	Spec        models.TemplateSpec
	Description string
}

// WorkbookTemplate pairs a workbook template with its description.
type WorkbookTemplate struct {
	Spec        models.WorkbookSpec
	Description string
}

// CSVTemplates returns the delimited templates written into dir.
func CSVTemplates(dir string) []CSVTemplate {
	return []CSVTemplate{
		{
			Spec:        models.TemplateSpec{Path: filepath.Join(dir, CommaFile), Delimiter: ',', Rows: SampleMatches},
			Description: "Comma-separated template",
		},
		{
			Spec:        models.TemplateSpec{Path: filepath.Join(dir, SemicolonFile), Delimiter: ';', Rows: SampleMatches},
			Description: "Semicolon-separated template",
		},
		{
			Spec:        models.TemplateSpec{Path: filepath.Join(dir, InstructionsFile), Delimiter: ',', Rows: SampleMatches, Instructions: CSVInstructions},
			Description: "Template with instructions",
		},
		{
			Spec:        models.TemplateSpec{Path: filepath.Join(dir, FormattedFile), Delimiter: ',', Rows: FormattedMatches},
			Description: "Properly formatted example",
		},
	}
}

// WorkbookTemplates returns the xlsx templates written into dir.
func WorkbookTemplates(dir string) []WorkbookTemplate {
	return []WorkbookTemplate{
		{
			Spec: models.WorkbookSpec{
				Path: filepath.Join(dir, SampleWorkbookFile),
				Sheets: []models.SheetSpec{
					{Name: DataSheetName, Header: models.DisplayLabels, Rows: models.RowValues(WorkbookMatches), MaxColWidth: dataColWidth},
				},
			},
			Description: "Sample data template",
		},
		{
			Spec: models.WorkbookSpec{
				Path: filepath.Join(dir, InstructionsWorkbook),
				Sheets: []models.SheetSpec{
					{Name: InstructionsSheetName, Rows: WorkbookInstructions, MaxColWidth: instructionsColWidth},
					{Name: SampleDataSheetName, Header: models.DisplayLabels, Rows: models.RowValues(WorkbookMatches[:3]), MaxColWidth: dataColWidth},
				},
			},
			Description: "Template with instructions and sample data",
		},
	}
}

// GenerateCSV writes all delimited templates.
// It stops at the first failure and returns the files written so far.
func GenerateCSV(opts Options) ([]Result, error) {
	var results []Result
	for _, tmpl := range CSVTemplates(opts.outputDir()) {
		path, err := emitter.EmitCSV(tmpl.Spec)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Path: path, Description: tmpl.Description})
	}
	return results, nil
}

// GenerateWorkbooks writes all xlsx templates.
// It stops at the first failure and returns the files written so far.
func GenerateWorkbooks(opts Options) ([]Result, error) {
	var results []Result
	for _, tmpl := range WorkbookTemplates(opts.outputDir()) {
		path, err := emitter.EmitWorkbook(tmpl.Spec)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Path: path, Description: tmpl.Description})
	}
	return results, nil
}
