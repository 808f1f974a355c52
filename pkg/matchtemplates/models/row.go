// Package models defines data structures for match import templates.
package models

// FieldNames is the fixed column header of every delimited template.
var FieldNames = []string{"date", "time", "matchNumber", "homeTeam", "awayTeam", "category"}

// DisplayLabels are the human-readable column labels used as the workbook header.
var DisplayLabels = []string{"Datum", "Čas", "Číslo zápasu", "Domácí tým", "Hostující tým", "Kategorie"}

// TemplateRow represents a single sample match.
type TemplateRow struct {
	// Date is the match date formatted as DD.MM.YYYY.
	Date string
	// Time is the kick-off time formatted as HH:MM.
	Time string
	// MatchNumber is free text (e.g. "1" or "Finále").
	MatchNumber string
	// HomeTeam is the home team name.
	HomeTeam string
	// AwayTeam is the away team name.
	AwayTeam string
	// Category is the competition category name.
	Category string
}

// Values returns the row fields in header order.
func (r TemplateRow) Values() []string {
	return []string{r.Date, r.Time, r.MatchNumber, r.HomeTeam, r.AwayTeam, r.Category}
}

// Note returns an instruction row holding a label and its explanation
// in the first two columns.
func Note(label, text string) TemplateRow {
	return TemplateRow{Date: label, Time: text}
}
