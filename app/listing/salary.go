package listing

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Salary patterns are tried in order; the first match wins and later
// patterns are never consulted. Mirrors the formats actually observed
// across the source fleet.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[$€£]?(\d+(?:\.\d+)?)k`),                                  // $120k, €100k, £90k, 120k
	regexp.MustCompile(`\$(\d+),(\d{3})`),                                             // $120,000
	regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*-\s*\$?(\d+(?:\.\d+)?)\s*/\s*h(?:ou)?r?`), // $30-55/hour
	regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*/\s*h(?:ou)?r?`),                      // $100/hour, $100/hr, $100/h
	regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*per\s*hour`),                          // $100 per hour
	regexp.MustCompile(`时薪\s*(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?`),           // 时薪 30, 时薪 30-55
	regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*-\s*\$(\d+(?:\.\d+)?)`),                   // $100 - $150
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(?:usd|eur|gbp|美元|美金)`), // 100-150 USD
	regexp.MustCompile(`(\d+(?:\.\d+)?)万`),                                           // 1.5万
}

var hourlyMarkers = []string{"/hour", "/hr", "/h", "per hour", "时薪"}

// ExtractSalary pulls a single annualized USD figure out of free text.
// Returns 0 when nothing matches, which means "unknown", never "zero pay".
// Deterministic: same text always yields the same value.
func ExtractSalary(text string) int {
	// Fold full-width digits and currency signs so CJK postings match the
	// same patterns as ASCII ones.
	text = strings.ToLower(width.Narrow.String(text))

	for _, pattern := range salaryPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		amount, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}

		// Ranges collapse to their arithmetic mean before unit conversion.
		if len(match) > 2 && match[2] != "" {
			if upper, err := strconv.ParseFloat(match[2], 64); err == nil && upper > amount {
				amount = (amount + upper) / 2
			}
		}

		switch {
		case containsAny(text, hourlyMarkers):
			// Hourly to annual at 2000 working hours.
			amount *= 2000
		case strings.Contains(text, "万"):
			// 万 figures are quoted monthly; convert to annual.
			amount = amount * 10000 * 12
		case strings.Contains(text, "/month") || strings.Contains(text, "月"):
			amount *= 12
		case amount < 1000:
			// Bare small numbers are "k" shorthand for annual thousands.
			amount *= 1000
		}

		return int(amount)
	}

	return 0
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
