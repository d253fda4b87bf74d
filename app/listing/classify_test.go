package listing

import (
	"testing"
	"time"
)

func TestExclusionKeywordRejectsDespiteSignals(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	// Every positive signal present, but the title carries an exclusion term.
	item := Item{
		Title:      "Junior React Developer",
		Link:       "https://example.com/1",
		Summary:    "Fully remote, $150k, senior-friendly team, equity",
		SourceName: "Some Board",
		Type:       TypeJob,
	}

	if classifier.IsHighValueJob(item) {
		t.Error("item with exclusion keyword in title must be rejected regardless of signals")
	}
}

func TestRemoteAndSalaryShortCircuit(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	item := Item{
		Title:      "Accountant",
		Link:       "https://example.com/2",
		Summary:    "work remote, pays $150k",
		SourceName: "Unknown Board",
		Type:       TypeJob,
	}

	if !classifier.IsHighValueJob(item) {
		t.Error("remote + acceptable salary should accept outright")
	}
}

func TestTrustedPlatformPassesEverything(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	item := Item{
		Title:      "寻找合作伙伴",
		Link:       "https://www.v2ex.com/t/1",
		SourceName: "V2EX 酷工作",
		Type:       TypeJob,
	}

	if !classifier.IsHighValueJob(item) {
		t.Error("trusted platform output should pass unconditionally")
	}
}

func TestScoreThresholdAcceptsWeakSignal(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	// Single topical keyword, nothing else: score 2 from frontend match,
	// above the deliberately low threshold of 1.
	item := Item{
		Title:      "React position",
		Link:       "https://example.com/3",
		SourceName: "Obscure Board",
		Type:       TypeJob,
	}

	if !classifier.IsHighValueJob(item) {
		t.Error("a weakly relevant item should pass the recall-oriented threshold")
	}
}

func TestNoSignalRejected(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	item := Item{
		Title:      "Bakery assistant wanted",
		Link:       "https://example.com/4",
		SourceName: "Obscure Board",
		Type:       TypeJob,
	}

	if classifier.IsHighValueJob(item) {
		t.Error("item with no signals should be rejected")
	}
}

func TestIdeaTypeNeverClassifiedAsJob(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	item := Item{
		Title:      "Remote React Engineer $200k",
		Link:       "https://example.com/5",
		SourceName: "RemoteOK",
		Type:       TypeIdea,
	}

	if classifier.IsHighValueJob(item) {
		t.Error("type is inherited from the source and must gate job scoring")
	}
}

func TestIdeaPlatformAllowlist(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	item := Item{
		Title:      "random post with no keywords at all",
		Link:       "https://example.com/6",
		SourceName: "Reddit r/SomebodyMakeThis",
		Type:       TypeIdea,
	}

	if !classifier.IsPotentialIdea(item) {
		t.Error("idea-native platforms accept unconditionally")
	}
}

func TestIdeaPainPointKeyword(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	tests := []struct {
		name     string
		summary  string
		expected bool
	}{
		{"english pain point", "I am looking for a tool that does X", true},
		{"chinese pain point", "这个流程太麻烦了", true},
		{"no pain point", "just sharing my vacation photos", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{
				Title:      "post",
				Link:       "https://example.com/7",
				Summary:    tt.summary,
				SourceName: "Some Forum",
				Type:       TypeIdea,
			}
			if got := classifier.IsPotentialIdea(item); got != tt.expected {
				t.Errorf("IsPotentialIdea = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRunSplitsAndDedups(t *testing.T) {
	classifier := NewClassifier(DefaultRules())
	now := time.Now()

	items := []Item{
		{Title: "Remote React Dev", Link: "https://a/1", Summary: "$150k remote", SourceName: "Board", Type: TypeJob, Timestamp: now},
		{Title: "Remote React Dev", Link: "https://a/1", Summary: "$150k remote", SourceName: "Board", Type: TypeJob, Timestamp: now},
		{Title: "need a tool", Link: "https://a/2", Summary: "looking for a better way", SourceName: "Forum", Type: TypeIdea, Timestamp: now},
		{Title: "Bakery assistant", Link: "https://a/3", SourceName: "Board", Type: TypeJob, Timestamp: now},
	}

	result := classifier.Run(items)

	if len(result.Jobs) != 1 {
		t.Errorf("expected 1 job after dedup and scoring, got %d", len(result.Jobs))
	}
	if len(result.Ideas) != 1 {
		t.Errorf("expected 1 idea, got %d", len(result.Ideas))
	}
}

func TestSortByDateDesc(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{Title: "old", Link: "1", Timestamp: base},
		{Title: "newest", Link: "2", Timestamp: base.Add(48 * time.Hour)},
		{Title: "middle", Link: "3", Timestamp: base.Add(24 * time.Hour)},
	}

	SortByDateDesc(items)

	expected := []string{"newest", "middle", "old"}
	for i, title := range expected {
		if items[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, items[i].Title)
		}
	}
}
