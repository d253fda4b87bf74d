package listing

import (
	"testing"
)

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"annual k shorthand", "$120k", 120000},
		{"bare k shorthand", "salary 150k per year", 150000},
		{"euro k", "€100k", 100000},
		{"pound k", "£90k", 90000},
		{"comma separated", "$120,000", 120000},
		{"hourly", "$60/hour", 120000},
		{"hourly hr", "$75/hr", 150000},
		{"hourly short", "$50/h", 100000},
		{"per hour", "$45 per hour", 90000},
		{"chinese hourly", "时薪 50", 100000},
		{"hourly range", "$30-55/hour", 85000},
		{"dollar range", "$100 - $150", 125000},
		{"range with currency", "100-150 USD", 125000},
		{"chinese wan monthly", "1.5万/月", 180000},
		{"chinese wan", "2万", 240000},
		{"full width digits", "１２０k", 120000},
		{"no salary", "no salary mentioned", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSalary(tt.text)
			if got != tt.expected {
				t.Errorf("ExtractSalary(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractSalaryDeterministic(t *testing.T) {
	text := "Senior Frontend Engineer $120k-180k remote"
	first := ExtractSalary(text)
	for i := 0; i < 10; i++ {
		if got := ExtractSalary(text); got != first {
			t.Fatalf("ExtractSalary not deterministic: got %d then %d", first, got)
		}
	}
}

func TestExtractSalaryFirstMatchWins(t *testing.T) {
	// The k pattern precedes the hourly pattern; once it matches, hourly
	// figures later in the text are never consulted.
	got := ExtractSalary("$120k base, contractors $500/hour")
	// Hourly marker present in text, so unit conversion goes hourly.
	if got != 120*2000 {
		t.Errorf("expected first pattern to win with hourly units, got %d", got)
	}
}
