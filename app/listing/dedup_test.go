package listing

import (
	"testing"
	"time"
)

func TestDedupRemovesExactPairs(t *testing.T) {
	items := []Item{
		{Title: "Frontend Engineer", Link: "https://example.com/1", SourceName: "A"},
		{Title: "Frontend Engineer", Link: "https://example.com/1", SourceName: "B"},
		{Title: "Frontend Engineer", Link: "https://example.com/2", SourceName: "A"},
		{Title: "Backend Engineer", Link: "https://example.com/1", SourceName: "A"},
	}

	result := Dedup(items)

	if len(result) != 3 {
		t.Fatalf("expected 3 items after dedup, got %d", len(result))
	}
	// First-seen wins, so the survivor carries source A.
	if result[0].SourceName != "A" {
		t.Errorf("expected first-seen item to survive, got source %s", result[0].SourceName)
	}
}

func TestDedupPreservesOrder(t *testing.T) {
	items := []Item{
		{Title: "c", Link: "3"},
		{Title: "a", Link: "1"},
		{Title: "b", Link: "2"},
		{Title: "a", Link: "1"},
	}

	result := Dedup(items)

	expected := []string{"c", "a", "b"}
	for i, title := range expected {
		if result[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, result[i].Title)
		}
	}
}

func TestDedupIdempotent(t *testing.T) {
	items := []Item{
		{Title: "a", Link: "1", Timestamp: time.Now()},
		{Title: "a", Link: "1", Timestamp: time.Now()},
		{Title: "b", Link: "2", Timestamp: time.Now()},
	}

	once := Dedup(items)
	twice := Dedup(once)

	if len(once) > len(items) {
		t.Errorf("dedup grew the list: %d > %d", len(once), len(items))
	}
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Title != twice[i].Title || once[i].Link != twice[i].Link {
			t.Errorf("position %d changed on second pass", i)
		}
	}
}

func TestDedupIgnoresOtherFields(t *testing.T) {
	items := []Item{
		{Title: "a", Link: "1", Summary: "one", Author: "x"},
		{Title: "a", Link: "1", Summary: "completely different", Author: "y"},
	}

	if got := len(Dedup(items)); got != 1 {
		t.Errorf("expected identical (title, link) pairs to dedup regardless of other fields, got %d items", got)
	}
}
