package fetch

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// Loose match for salary figures embedded in feed descriptions, e.g.
// "$85,000 - $110,000/year".
var feedSalaryPattern = regexp.MustCompile(`(?i)\$[\d,]+(?:\s*-\s*\$[\d,]+)?(?:/(?:year|month|hour))?`)

func (s *Set) fetchRSS(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]listing.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Title == "" || entry.Link == "" {
			continue
		}

		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}
		summary = extractText(summary)

		timestamp := time.Now()
		if entry.PublishedParsed != nil {
			timestamp = *entry.PublishedParsed
		} else if entry.Published != "" {
			timestamp = parseTimestamp(entry.Published)
		}

		author := ""
		if entry.Author != nil {
			author = entry.Author.Name
		}

		items = append(items, listing.Item{
			Title:      entry.Title,
			Link:       entry.Link,
			Summary:    summary,
			Meta:       entry.Published,
			Author:     author,
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  timestamp,
			SalaryText: feedSalaryPattern.FindString(summary),
			Tags:       entry.Categories,
		})
	}

	return s.limit(items), nil
}
