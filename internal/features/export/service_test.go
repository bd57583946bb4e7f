package export

import (
	"strings"
	"testing"
	"time"
)

var testColumns = []Column{
	{ID: "name", Header: "Name"},
	{ID: "email", Header: "Email"},
	{ID: "company", Header: "Company"},
}

func TestBuildCSV(t *testing.T) {
	service := NewExportService()

	rows := [][]string{
		{"John Doe", "john@gmail.com", "Acme Tax"},
		{`Smith, "Sam"`, "sam@gmail.com", "Line\nBreak Ltd"},
	}

	file, err := service.Build("Team Members", testColumns, rows, ScopeFiltered, FormatCSV)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := string(file.Data)
	lines := strings.SplitN(got, "\n", 2)
	if lines[0] != "Name,Email,Company" {
		t.Errorf("header = %q", lines[0])
	}

	// Fields with delimiters, quotes or newlines are quoted with doubled quotes
	if !strings.Contains(got, `"Smith, ""Sam"""`) {
		t.Errorf("embedded quotes/delimiter not escaped: %q", got)
	}
	if !strings.Contains(got, "\"Line\nBreak Ltd\"") {
		t.Errorf("embedded newline not quoted: %q", got)
	}
	// Plain fields stay unquoted
	if strings.Contains(got, `"John Doe"`) {
		t.Errorf("plain field should not be quoted: %q", got)
	}

	if file.ContentType != "text/csv" {
		t.Errorf("ContentType = %q", file.ContentType)
	}
}

func TestBuildTSV(t *testing.T) {
	service := NewExportService()

	rows := [][]string{{"John Doe", "john@gmail.com", "Acme Tax"}}
	file, err := service.Build("team-members", testColumns, rows, ScopeAll, FormatTSV)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.HasPrefix(string(file.Data), "Name\tEmail\tCompany") {
		t.Errorf("TSV header wrong: %q", string(file.Data))
	}
	if !strings.HasSuffix(file.Name, ".tsv") {
		t.Errorf("filename = %q, want .tsv extension", file.Name)
	}
}

func TestBuildXLSX(t *testing.T) {
	service := NewExportService()

	rows := [][]string{{"John Doe", "john@gmail.com", "Acme Tax"}}
	file, err := service.Build("team-members", testColumns, rows, ScopeSelected, FormatXLSX)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(file.Data) == 0 {
		t.Error("empty xlsx payload")
	}
	if file.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("ContentType = %q", file.ContentType)
	}
}

func TestBuildUnsupportedFormat(t *testing.T) {
	service := NewExportService()

	if _, err := service.Build("team-members", testColumns, nil, ScopeAll, Format("pdf")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		entity string
		scope  Scope
		count  int
		format Format
		want   string
	}{
		{"Team Members", ScopeFiltered, 42, FormatCSV, "team-members-2026-08-30-filtered-42.csv"},
		{"team-members", ScopeAll, 0, FormatTSV, "team-members-2026-08-30-all-0.tsv"},
		{"Invoices (Q3)", ScopeSelected, 7, FormatXLSX, "invoices-q3-2026-08-30-selected-7.xlsx"},
	}

	for _, tt := range tests {
		if got := Filename(tt.entity, tt.scope, tt.count, tt.format, at); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.entity, got, tt.want)
		}
	}
}
