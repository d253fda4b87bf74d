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

// defaultSocialKeywords gates social timeline posts: a post counts as a
// listing only when it talks about work at all.
var defaultSocialKeywords = []string{
	"hiring", "we're hiring", "we are hiring", "job", "position",
	"remote", "freelance", "contract", "looking for", "apply",
	"招聘", "远程", "外包", "兼职",
}

// fetchSocial parses social platform pages. Two structures cover the
// platforms in the catalog: job-card grids (LinkedIn-style) and post
// timelines (Nitter/group-style); cards are tried first.
func (s *Set) fetchSocial(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", src.Name, err)
	}

	items := s.parseJobCards(doc, src)
	if len(items) == 0 {
		items = s.parseTimeline(doc, src)
	}

	return s.limit(items), nil
}

func (s *Set) parseJobCards(doc *goquery.Document, src source.Source) []listing.Item {
	var items []listing.Item

	doc.Find(".jobs-search__results-list li, .job-card-container").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".base-search-card__title, .job-card-container__link").First().Text())
		company := strings.TrimSpace(card.Find(".base-search-card__subtitle, .job-card-container__company-name").First().Text())
		location := strings.TrimSpace(card.Find(".job-search-card__location, .job-card-container__metadata-item").First().Text())
		salary := strings.TrimSpace(card.Find(".job-card-container__salary-info").First().Text())
		href, _ := card.Find("a").First().Attr("href")
		link := absoluteURL(href, src.URL)

		if title == "" || link == "" {
			return
		}
		if company != "" {
			title = company + " - " + title
		}

		items = append(items, listing.Item{
			Title:      title,
			Link:       link,
			Summary:    strings.TrimSpace(card.Find(".base-search-card__snippet").First().Text()),
			Meta:       strings.TrimSpace(location + " " + salary),
			Author:     orUnknown(company),
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  time.Now(),
			SalaryText: salary,
		})
	})

	return items
}

func (s *Set) parseTimeline(doc *goquery.Document, src source.Source) []listing.Item {
	var items []listing.Item

	doc.Find(".timeline-item, div[role=\"article\"]").Each(func(_ int, post *goquery.Selection) {
		content := strings.TrimSpace(post.Find(".tweet-content, .userContent, div[data-ad-preview=\"message\"]").First().Text())
		if content == "" {
			return
		}
		if !matchesAnyTag(strings.ToLower(content), s.socialKeywords) {
			return
		}

		author := strings.TrimSpace(post.Find(".username, h5 a, strong").First().Text())
		href, _ := post.Find(".tweet-link, a").First().Attr("href")
		link := absoluteURL(href, src.URL)
		postTime, _ := post.Find(".tweet-date").First().Attr("title")

		if link == "" {
			return
		}

		items = append(items, listing.Item{
			Title:      truncate(content, 100),
			Link:       link,
			Summary:    truncate(content, summaryMaxLen),
			Meta:       strings.TrimSpace("@" + author + " • " + postTime),
			Author:     orUnknown(author),
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  parseTimestamp(postTime),
		})
	})

	return items
}
