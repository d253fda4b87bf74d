package fetch

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// Adapter maps one source's raw response into zero or more items. Parse and
// transport failures surface as errors here; the orchestrator is the layer
// that collapses them to empty output.
type Adapter interface {
	Fetch(ctx context.Context, src source.Source) ([]listing.Item, error)
}

// Set dispatches to the per-format parsers over one shared client. Social
// sources are recognized by category or name before format dispatch, the
// same precedence the source fleet has always had.
type Set struct {
	client          *Client
	maxItems        int
	socialPlatforms []string
	socialKeywords  []string
}

func NewSet(client *Client, maxItems int, socialPlatforms []string) *Set {
	return &Set{
		client:          client,
		maxItems:        maxItems,
		socialPlatforms: socialPlatforms,
		socialKeywords:  defaultSocialKeywords,
	}
}

func (s *Set) Fetch(ctx context.Context, src source.Source) ([]listing.Item, error) {
	if s.isSocial(src) {
		return s.fetchSocial(ctx, src)
	}

	switch src.Format {
	case source.FormatTopicList:
		return s.fetchTopicList(ctx, src)
	case source.FormatRSS:
		return s.fetchRSS(ctx, src)
	case source.FormatRemoteBoard:
		return s.fetchRemoteBoard(ctx, src)
	case source.FormatAggregatorNews:
		return s.fetchAggregatorNews(ctx, src)
	case source.FormatCommunity:
		return s.fetchCommunity(ctx, src)
	case source.FormatJSONBoard:
		return s.fetchJSONBoard(ctx, src)
	case source.FormatGenericJSON:
		return s.fetchGenericJSON(ctx, src)
	case source.FormatGenericHTML, source.FormatSocial:
		return s.fetchGenericHTML(ctx, src)
	default:
		return nil, nil
	}
}

func (s *Set) isSocial(src source.Source) bool {
	if src.Format == source.FormatSocial {
		return true
	}
	for _, platform := range s.socialPlatforms {
		if strings.EqualFold(src.Category, platform) || strings.Contains(src.Name, platform) {
			return true
		}
	}
	return false
}

// limit bounds one adapter invocation's output so a single oversized payload
// cannot swamp classification.
func (s *Set) limit(items []listing.Item) []listing.Item {
	if len(items) > s.maxItems {
		return items[:s.maxItems]
	}
	return items
}

// parseTimestamp turns whatever the upstream calls a date into a time.
// Unparseable or missing input becomes "now": a timestamp is never blank.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now()
	}
	if parsed, err := dateparse.ParseAny(raw); err == nil {
		return parsed
	}
	return time.Now()
}

// absoluteURL resolves href against the source page, leaving absolute links
// untouched.
func absoluteURL(href, base string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	resolved, err := baseURL.Parse(href)
	if err != nil {
		return href
	}
	return resolved.String()
}
