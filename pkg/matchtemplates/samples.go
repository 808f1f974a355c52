package matchtemplates

import "github.com/ukaji3/matchtemplates-go/pkg/matchtemplates/models"

// SampleMatches are the rows of the comma, semicolon and instructions CSV templates.
var SampleMatches = []models.TemplateRow{
	{Date: "15.03.2024", Time: "14:30", MatchNumber: "1", HomeTeam: "Baník Most (Most)", AwayTeam: "Sparta Praha (Sparta)", Category: "Muži (men)"},
	{Date: "15.03.2024", Time: "16:00", MatchNumber: "2", HomeTeam: "Slavia Praha (Slavia)", AwayTeam: "Baník Most (Most)", Category: "Muži (men)"},
	{Date: "22.03.2024", Time: "14:30", MatchNumber: "1", HomeTeam: "Baník Most (Most)", AwayTeam: "Slavia Praha (Slavia)", Category: "Ženy (women)"},
	{Date: "22.03.2024", Time: "16:00", MatchNumber: "2", HomeTeam: "Sparta Praha (Sparta)", AwayTeam: "Baník Most (Most)", Category: "Ženy (women)"},
	{Date: "29.03.2024", Time: "10:00", MatchNumber: "Finále", HomeTeam: "Baník Most (Most)", AwayTeam: "Slavia Praha (Slavia)", Category: "U16 (juniorBoys)"},
}

// FormattedMatches are the rows of the properly formatted CSV example.
var FormattedMatches = []models.TemplateRow{
	{Date: "15.03.2024", Time: "14:30", MatchNumber: "1", HomeTeam: "TJ Sokol Svinov (Svinov)", AwayTeam: "TJ Sokol Podlázky (Podlázky)", Category: "Muži (men)"},
	{Date: "15.03.2024", Time: "16:00", MatchNumber: "2", HomeTeam: "TJ Sokol Krčín (Krčín)", AwayTeam: "TJ Sokol Tymákov (Tymákov)", Category: "Muži (men)"},
	{Date: "22.03.2024", Time: "10:00", MatchNumber: "1", HomeTeam: "TJ Sokol Svinov (Svinov)", AwayTeam: "TJ Sokol Krčín (Krčín)", Category: "Ženy (women)"},
}

// CSVInstructions is the legend appended to the instructions CSV template.
// The two leading empty rows separate it from the data.
var CSVInstructions = []models.TemplateRow{
	{},
	{},
	models.Note("INSTRUKCE:", ""),
	models.Note("Datum:", "Formát DD.MM.YYYY (např. 15.03.2024)"),
	models.Note("Čas:", "Formát HH:MM (např. 14:30)"),
	models.Note("Číslo zápasu:", `Text nebo číslo (např. 1, 2, "Finále")`),
	models.Note("Domácí tým:", "Přesný název týmu z databáze"),
	models.Note("Hostující tým:", "Přesný název týmu z databáze"),
	models.Note("Kategorie:", "Přesný název kategorie z databáze"),
	models.Note("Oddělovač:", "Systém automaticky detekuje čárku (,) nebo středník (;)"),
}

// WorkbookMatches are the rows of the sample workbook template.
var WorkbookMatches = []models.TemplateRow{
	{Date: "15.03.2024", Time: "14:30", MatchNumber: "1", HomeTeam: "Baník Most", AwayTeam: "Sparta Praha", Category: "Muži"},
	{Date: "16.03.2024", Time: "16:00", MatchNumber: "2", HomeTeam: "Slavia Praha", AwayTeam: "Baník Most", Category: "Muži"},
	{Date: "17.03.2024", Time: "10:00", MatchNumber: "3", HomeTeam: "Baník Most", AwayTeam: "Slavia Praha", Category: "Ženy"},
	{Date: "18.03.2024", Time: "18:30", MatchNumber: "4", HomeTeam: "Baník Most", AwayTeam: "Sparta Praha", Category: "U16"},
	{Date: "19.03.2024", Time: "15:00", MatchNumber: "5", HomeTeam: "Slavia Praha", AwayTeam: "Baník Most", Category: "U18"},
}

// WorkbookInstructions are the rows of the instructions sheet.
var WorkbookInstructions = [][]string{
	{"INSTRUKCE PRO IMPORT ZÁPASŮ"},
	{""},
	{"STRUKTURA SLOUPCŮ:"},
	{"Sloupec A: Datum - Formát: DD.MM.YYYY nebo YYYY-MM-DD"},
	{"Sloupec B: Čas - Formát: HH:MM (24hodinový)"},
	{"Sloupec C: Číslo zápasu - Text nebo číslo"},
	{"Sloupec D: Domácí tým - Název týmu z databáze"},
	{"Sloupec E: Hostující tým - Název týmu z databáze"},
	{"Sloupec F: Kategorie - Název kategorie z databáze"},
	{""},
	{"DŮLEŽITÉ POŽADAVKY:"},
	{"1. První řádek musí obsahovat hlavičky sloupců"},
	{"2. Všechny týmy musí existovat v databázi"},
	{"3. Všechny kategorie musí existovat v databázi"},
	{"4. Čas musí být ve formátu HH:MM"},
	{"5. Datum musí být platné"},
	{"6. Domácí a hostující tým nemohou být stejné"},
	{""},
	{"PŘÍKLAD DAT:"},
	{"15.03.2024", "14:30", "1", "Baník Most", "Sparta Praha", "Muži"},
	{"16.03.2024", "16:00", "2", "Slavia Praha", "Baník Most", "Muži"},
	{"17.03.2024", "10:00", "3", "Baník Most", "Slavia Praha", "Ženy"},
}
