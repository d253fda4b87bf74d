package fetch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// Candidate selectors for listing containers on unknown boards, tried in
// order; the first one that yields any matches wins. Covers the markup the
// fleet's boards have actually shipped, so minor drift on one site falls
// through to the next candidate instead of requiring per-source config.
var listingSelectors = []string{
	".job-listing",
	".job-item",
	".job-card",
	".listing-item",
	"article.job",
	".opportunity",
	".position",
	"li.feature, section.jobs article",
	".job_listing, .card-job",
}

// fetchTopicList parses forum-style topic listings (V2EX node pages and
// lookalikes): rows of linked titles with an author and a reply count.
func (s *Set) fetchTopicList(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", src.Name, err)
	}

	var items []listing.Item
	doc.Find("#TopicsNode .cell, .topic-list .cell").Each(func(_ int, cell *goquery.Selection) {
		titleEl := cell.Find(".item_title a").First()
		title := strings.TrimSpace(titleEl.Text())
		href, _ := titleEl.Attr("href")
		link := absoluteURL(href, src.URL)

		if title == "" || link == "" {
			return
		}

		author := strings.TrimSpace(cell.Find(".topic_info strong a").First().Text())
		replies := strings.TrimSpace(cell.Find(".count_livid").First().Text())
		if replies == "" {
			replies = "0"
		}

		items = append(items, listing.Item{
			Title:      title,
			Link:       link,
			Meta:       fmt.Sprintf("%s • %s 回复", orUnknown(author), replies),
			Author:     orUnknown(author),
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  time.Now(),
		})
	})

	return s.limit(items), nil
}

// fetchGenericHTML scrapes unknown job boards by walking the candidate
// selector list.
func (s *Set) fetchGenericHTML(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", src.Name, err)
	}

	var items []listing.Item
	for _, selector := range listingSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}

		matches.Each(func(_ int, el *goquery.Selection) {
			title := strings.TrimSpace(el.Find("h2, h3, .title, .job-title").First().Text())
			href, _ := el.Find("a").First().Attr("href")
			link := absoluteURL(href, src.URL)
			if title == "" || link == "" {
				return
			}

			company := strings.TrimSpace(el.Find(".company, .employer, .company-name").First().Text())
			salary := strings.TrimSpace(el.Find(".salary, .compensation").First().Text())

			var tags []string
			el.Find(".job-tag, .tag").Each(func(_ int, tag *goquery.Selection) {
				if text := strings.TrimSpace(tag.Text()); text != "" {
					tags = append(tags, text)
				}
			})

			items = append(items, listing.Item{
				Title:      title,
				Link:       link,
				Meta:       strings.TrimSpace(company + " " + salary),
				Author:     orUnknown(company),
				SourceName: src.Name,
				Type:       src.Type,
				Region:     src.Region,
				Timestamp:  time.Now(),
				SalaryText: salary,
				Tags:       tags,
			})
		})
		break
	}

	return s.limit(items), nil
}
