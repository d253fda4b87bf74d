package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const summaryMaxLen = 200

// extractText reduces possibly-HTML descriptive text to a plain-text
// summary. Board APIs ship full HTML job descriptions; the classifier only
// needs the words.
func extractText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.Contains(raw, "<") {
		return truncate(raw, summaryMaxLen)
	}

	if article, err := readability.FromReader(strings.NewReader(raw), nil); err == nil {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			return truncate(collapseWhitespace(text), summaryMaxLen)
		}
	}

	// Readability gives up on short fragments; fall back to stripping tags.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		return truncate(collapseWhitespace(doc.Text()), summaryMaxLen)
	}

	return truncate(raw, summaryMaxLen)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
