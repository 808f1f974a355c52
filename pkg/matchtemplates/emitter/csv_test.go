package emitter

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/matchtemplates-go/pkg/matchtemplates/models"
)

var testRows = []models.TemplateRow{
	{Date: "15.03.2024", Time: "14:30", MatchNumber: "1", HomeTeam: "Baník Most (Most)", AwayTeam: "Sparta Praha (Sparta)", Category: "Muži (men)"},
	{Date: "29.03.2024", Time: "10:00", MatchNumber: "Finále", HomeTeam: "Baník Most (Most)", AwayTeam: "Slavia Praha (Slavia)", Category: "U16 (juniorBoys)"},
}

func readCSV(t *testing.T, path string, comma rune) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return records
}

func TestEmitCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "matches.csv")

	got, err := EmitCSV(models.TemplateSpec{Path: path, Delimiter: ',', Rows: testRows})
	if err != nil {
		t.Fatalf("EmitCSV failed: %v", err)
	}
	if got != path {
		t.Errorf("Expected path %q, got %q", path, got)
	}

	records := readCSV(t, path, ',')
	want := append([][]string{models.FieldNames}, models.RowValues(testRows)...)
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitCSVLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	if _, err := EmitCSV(models.TemplateSpec{Path: path, Delimiter: ',', Rows: testRows}); err != nil {
		t.Fatalf("EmitCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	lines := strings.Split(string(data), "\r\n")
	if lines[0] != "date,time,matchNumber,homeTeam,awayTeam,category" {
		t.Errorf("Unexpected header line %q", lines[0])
	}
	if lines[1] != "15.03.2024,14:30,1,Baník Most (Most),Sparta Praha (Sparta),Muži (men)" {
		t.Errorf("Unexpected first data line %q", lines[1])
	}
}

func TestEmitCSVDelimiters(t *testing.T) {
	dir := t.TempDir()
	commaPath := filepath.Join(dir, "comma.csv")
	semicolonPath := filepath.Join(dir, "semicolon.csv")

	if _, err := EmitCSV(models.TemplateSpec{Path: commaPath, Delimiter: ',', Rows: testRows}); err != nil {
		t.Fatalf("EmitCSV comma failed: %v", err)
	}
	if _, err := EmitCSV(models.TemplateSpec{Path: semicolonPath, Delimiter: ';', Rows: testRows}); err != nil {
		t.Fatalf("EmitCSV semicolon failed: %v", err)
	}

	comma := readCSV(t, commaPath, ',')
	semicolon := readCSV(t, semicolonPath, ';')
	if diff := cmp.Diff(comma, semicolon); diff != "" {
		t.Errorf("delimiter variants differ (-comma +semicolon):\n%s", diff)
	}

	data, err := os.ReadFile(semicolonPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "date;time;matchNumber;homeTeam;awayTeam;category\r\n") {
		t.Errorf("Unexpected semicolon header in %q", data)
	}
}

func TestEmitCSVInstructions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instructions.csv")
	instructions := []models.TemplateRow{
		{},
		models.Note("Číslo zápasu:", `Text nebo číslo (např. 1, 2, "Finále")`),
	}

	if _, err := EmitCSV(models.TemplateSpec{Path: path, Delimiter: ',', Rows: testRows, Instructions: instructions}); err != nil {
		t.Fatalf("EmitCSV failed: %v", err)
	}

	records := readCSV(t, path, ',')
	if len(records) != 1+len(testRows)+len(instructions) {
		t.Fatalf("Expected %d records, got %d", 1+len(testRows)+len(instructions), len(records))
	}
	for i, rec := range records {
		if len(rec) != len(models.FieldNames) {
			t.Errorf("record %d has %d fields, expected %d", i, len(rec), len(models.FieldNames))
		}
	}
	last := records[len(records)-1]
	if last[1] != `Text nebo číslo (např. 1, 2, "Finále")` {
		t.Errorf("Unexpected instruction text %q", last[1])
	}
}

func TestEmitCSVIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	spec := models.TemplateSpec{Path: path, Delimiter: ';', Rows: testRows}

	if _, err := EmitCSV(spec); err != nil {
		t.Fatalf("first EmitCSV failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if _, err := EmitCSV(spec); err != nil {
		t.Fatalf("second EmitCSV failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("output changed between runs:\n%q\n%q", first, second)
	}
}

func TestEmitCSVErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	tests := []struct {
		name     string
		spec     models.TemplateSpec
		op       string
		sentinel error
	}{
		{"no rows", models.TemplateSpec{Path: filepath.Join(dir, "a.csv"), Delimiter: ','}, "validate", ErrNoRows},
		{"bad delimiter", models.TemplateSpec{Path: filepath.Join(dir, "b.csv"), Delimiter: '|', Rows: testRows}, "validate", ErrInvalidDelimiter},
		{"unwritable dir", models.TemplateSpec{Path: filepath.Join(blocker, "sub", "c.csv"), Delimiter: ',', Rows: testRows}, "mkdir", nil},
	}

	for _, tt := range tests {
		_, err := EmitCSV(tt.spec)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		var we *WriteError
		if !errors.As(err, &we) {
			t.Errorf("%s: expected *WriteError, got %T", tt.name, err)
			continue
		}
		if we.Op != tt.op {
			t.Errorf("%s: expected op %q, got %q", tt.name, tt.op, we.Op)
		}
		if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
			t.Errorf("%s: expected errors.Is(%v), got %v", tt.name, tt.sentinel, err)
		}
	}
}
