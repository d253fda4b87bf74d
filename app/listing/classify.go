package listing

import (
	"fmt"
	"sort"
	"strings"
)

// Classifier decides job/idea membership for deduplicated items. It is pure
// policy over the injected Rules and knows nothing about fetching.
type Classifier struct {
	rules Rules
}

func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Result carries both accepted sets from one classification pass.
type Result struct {
	Jobs  []Item
	Ideas []Item
}

// Run deduplicates the given items and splits them into high-value jobs and
// potential ideas. It never fails: malformed fields degrade to "no signal".
func (c *Classifier) Run(items []Item) Result {
	items = Dedup(items)

	result := Result{
		Jobs:  make([]Item, 0, len(items)),
		Ideas: make([]Item, 0),
	}

	for _, item := range items {
		switch {
		case item.Type == TypeJob && c.IsHighValueJob(item):
			result.Jobs = append(result.Jobs, item)
		case item.Type == TypeIdea && c.IsPotentialIdea(item):
			result.Ideas = append(result.Ideas, item)
		}
	}

	return result
}

// IsHighValueJob applies the weighted heuristic to a job item. Title-level
// exclusion keywords reject outright regardless of any positive signal.
func (c *Classifier) IsHighValueJob(item Item) bool {
	if item.Type != TypeJob {
		return false
	}

	text := CombinedText(item)

	if matchesAny(strings.ToLower(item.Title), c.rules.ExcludeKeywords) {
		return false
	}

	isFrontend := matchesAny(text, c.rules.FrontendKeywords)
	isTech := matchesAny(text, c.rules.TechKeywords)
	hasGoodSalary := ExtractSalary(text) >= c.rules.SalaryFloor
	hasHighSalaryKeyword := matchesAny(text, c.rules.HighSalaryKeywords)
	isRemotePlatform := platformMatch(item.SourceName, c.rules.RemotePlatforms)
	hasRemote := isRemotePlatform || matchesAny(text, c.rules.RemoteKeywords)
	fromHighSalaryPlatform := platformMatch(item.SourceName, c.rules.HighSalaryPlatforms)

	// Combination short-circuits accept outright, bypassing the score.
	switch {
	case hasRemote && hasGoodSalary:
		return true
	case isFrontend && hasGoodSalary:
		return true
	case fromHighSalaryPlatform && hasRemote:
		return true
	case isRemotePlatform && (isFrontend || isTech || strings.Contains(text, "developer")):
		return true
	case strings.Contains(item.SourceName, "Reddit") && (hasRemote || isFrontend || isTech):
		return true
	case platformMatch(item.SourceName, c.rules.TrustedJobPlatforms):
		// Entire output of trusted platforms passes.
		return true
	}

	score := 0
	if isFrontend {
		score += 2
	}
	if isTech {
		score++
	}
	if hasRemote {
		score += 2
	}
	if hasGoodSalary {
		score += 3
	}
	if hasHighSalaryKeyword {
		score += 2
	}
	if fromHighSalaryPlatform {
		score += 2
	}
	if matchesAny(text, c.rules.SeniorityKeywords) {
		score++
	}
	if strings.Contains(text, "developer") || strings.Contains(text, "engineer") {
		score++
	}

	return score >= c.rules.ScoreThreshold
}

// IsPotentialIdea accepts idea items from idea-native venues unconditionally,
// otherwise requires at least one pain-point keyword in the combined text.
func (c *Classifier) IsPotentialIdea(item Item) bool {
	if item.Type != TypeIdea {
		return false
	}

	if platformMatch(item.SourceName, c.rules.IdeaPlatforms) {
		return true
	}

	return matchesAny(CombinedText(item), c.rules.PainPointKeywords)
}

// CombinedText is the classification input: title plus secondary text,
// lowercased.
func CombinedText(item Item) string {
	return strings.ToLower(fmt.Sprintf("%s %s %s", item.Title, item.Summary, item.Meta))
}

// SortByDateDesc orders items newest-first. Stability for equal timestamps
// is not guaranteed.
func SortByDateDesc(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
}

func matchesAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func platformMatch(sourceName string, platforms []string) bool {
	lower := strings.ToLower(sourceName)
	for _, platform := range platforms {
		if strings.Contains(lower, strings.ToLower(platform)) {
			return true
		}
	}
	return false
}
