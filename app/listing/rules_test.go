package listing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rules.SalaryFloor != 40000 {
		t.Errorf("Expected default salary floor 40000, got %d", rules.SalaryFloor)
	}
	if rules.ScoreThreshold != 1 {
		t.Errorf("Expected default score threshold 1, got %d", rules.ScoreThreshold)
	}
	if len(rules.FrontendKeywords) == 0 || len(rules.PainPointKeywords) == 0 {
		t.Error("Expected default keyword lists to be populated")
	}
}

func TestLoadRulesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	override := `salary_floor: 60000
score_threshold: 3
exclude_keywords:
  - "unpaid"
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rules.SalaryFloor != 60000 {
		t.Errorf("Expected overridden salary floor 60000, got %d", rules.SalaryFloor)
	}
	if rules.ScoreThreshold != 3 {
		t.Errorf("Expected overridden threshold 3, got %d", rules.ScoreThreshold)
	}
	if len(rules.ExcludeKeywords) != 1 || rules.ExcludeKeywords[0] != "unpaid" {
		t.Errorf("Expected exclusion list replaced by override, got %v", rules.ExcludeKeywords)
	}
	// Untouched lists keep their defaults.
	if len(rules.FrontendKeywords) == 0 {
		t.Error("Expected unlisted keyword groups to keep defaults")
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules("/nonexistent/rules.yml"); err == nil {
		t.Error("Expected error for missing rules file")
	}
}
