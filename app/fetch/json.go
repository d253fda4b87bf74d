package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// fetchGenericJSON handles boards whose payload shape is not known up
// front: it sniffs the common container layouts and falls back across the
// field names boards actually use. Entries without a title or link are
// dropped; their siblings still go through.
func (s *Set) fetchGenericJSON(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from %s: %w", src.Name, err)
	}

	entries := sniffEntries(payload)
	isReddit := strings.Contains(src.Name, "Reddit")

	items := make([]listing.Item, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		title := stringField(entry, "title", "position", "job_title")
		link := stringField(entry, "url", "link", "job_url", "apply_url")
		if isReddit {
			if permalink := stringField(entry, "permalink"); permalink != "" {
				link = "https://reddit.com" + permalink
			}
		}
		if title == "" || link == "" {
			continue
		}

		author := stringField(entry, "company", "employer", "author")
		if isReddit {
			author = stringField(entry, "author")
		}

		timestamp := stringField(entry, "created_at", "published", "date_posted")
		parsed := parseTimestamp(timestamp)
		if isReddit {
			if createdUTC, ok := entry["created_utc"].(float64); ok {
				parsed = time.Unix(int64(createdUTC), 0)
			}
		}

		items = append(items, listing.Item{
			Title:      title,
			Link:       link,
			Summary:    extractText(stringField(entry, "description", "summary", "selftext")),
			Meta:       stringField(entry, "company", "employer"),
			Author:     author,
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  parsed,
			Tags:       stringSliceField(entry, "tags"),
		})
	}

	return s.limit(items), nil
}

// fetchJSONBoard handles well-behaved board APIs that nest listings under
// "jobs" or "data" with consistent per-entry fields, including structured
// salary strings.
func (s *Set) fetchJSONBoard(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		// Some boards return a bare array.
		var list []any
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to decode JSON from %s: %w", src.Name, err)
		}
		payload = map[string]any{"jobs": list}
	}

	entries := arrayField(payload, "jobs", "data", "results")

	items := make([]listing.Item, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		title := stringField(entry, "title", "position", "job_title")
		link := stringField(entry, "url", "link", "apply_url")
		if title == "" || link == "" {
			continue
		}

		company := stringField(entry, "company_name", "company")
		category := stringField(entry, "category")
		salary := stringField(entry, "salary")

		meta := company
		if category != "" {
			meta = fmt.Sprintf("%s • %s", company, category)
		}
		if salary != "" {
			meta = strings.TrimSpace(meta + " " + salary)
		}

		tags := stringSliceField(entry, "tags")
		if len(tags) == 0 && category != "" {
			tags = []string{category}
		}

		items = append(items, listing.Item{
			Title:      title,
			Link:       link,
			Summary:    extractText(stringField(entry, "description")),
			Meta:       meta,
			Author:     orUnknown(company),
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  parseTimestamp(stringField(entry, "publication_date", "published_at", "created_at", "posted_at")),
			SalaryText: salary,
			Tags:       tags,
		})
	}

	return s.limit(items), nil
}

// fetchRemoteBoard handles the remote-board API shape where the response is
// a bare array whose first element is legal metadata, entries carry
// structured annual salary bounds, and the source URL's tag parameter
// drives local topical filtering.
func (s *Set) fetchRemoteBoard(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var entries []any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from %s: %w", src.Name, err)
	}

	// First element is metadata, not a listing.
	if len(entries) > 0 {
		entries = entries[1:]
	}

	tags := tagFilter(src.URL)

	items := make([]listing.Item, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		position := stringField(entry, "position")
		if position == "" {
			continue
		}

		entryTags := stringSliceField(entry, "tags")
		jobText := strings.ToLower(position + " " + strings.Join(entryTags, " "))
		if !matchesAnyTag(jobText, tags) {
			continue
		}

		link := stringField(entry, "url")
		if link == "" {
			if slug := stringField(entry, "slug"); slug != "" {
				link = "https://remoteok.com/remote-jobs/" + slug
			}
		}
		if link == "" {
			continue
		}

		company := stringField(entry, "company")
		location := stringField(entry, "location")
		if location == "" {
			location = "Remote"
		}

		// Annual bounds to a monthly display string.
		salary := ""
		if min, ok := numberField(entry, "salary_min"); ok && min > 0 {
			if max, ok := numberField(entry, "salary_max"); ok && max > 0 {
				salary = fmt.Sprintf("$%d-%d/月", int(math.Round(min/12)), int(math.Round(max/12)))
			}
		}

		items = append(items, listing.Item{
			Title:      position,
			Link:       link,
			Summary:    extractText(stringField(entry, "description")),
			Meta:       strings.TrimSpace(fmt.Sprintf("%s • %s %s", company, location, salary)),
			Author:     orUnknown(company),
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  parseTimestamp(stringField(entry, "date")),
			SalaryText: salary,
			Tags:       entryTags,
		})
	}

	return s.limit(items), nil
}

// fetchAggregatorNews handles search-API aggregators that return ranked
// "hits" with points and comment counts.
func (s *Set) fetchAggregatorNews(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Hits []struct {
			Title       string `json:"title"`
			StoryTitle  string `json:"story_title"`
			URL         string `json:"url"`
			ObjectID    string `json:"objectID"`
			Points      int    `json:"points"`
			NumComments int    `json:"num_comments"`
			Author      string `json:"author"`
			CreatedAt   string `json:"created_at"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from %s: %w", src.Name, err)
	}

	items := make([]listing.Item, 0, len(payload.Hits))
	for _, hit := range payload.Hits {
		title := hit.Title
		if title == "" {
			title = hit.StoryTitle
		}
		link := hit.URL
		if link == "" && hit.ObjectID != "" {
			link = "https://news.ycombinator.com/item?id=" + hit.ObjectID
		}
		if title == "" || link == "" {
			continue
		}

		items = append(items, listing.Item{
			Title:      title,
			Link:       link,
			Meta:       fmt.Sprintf("%d points • %d comments", hit.Points, hit.NumComments),
			Author:     hit.Author,
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  parseTimestamp(hit.CreatedAt),
		})
	}

	return s.limit(items), nil
}

// fetchCommunity handles community boards that nest posts under data.posts
// and link by post id.
func (s *Set) fetchCommunity(ctx context.Context, src source.Source) ([]listing.Item, error) {
	data, err := s.client.Get(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data struct {
			Posts []map[string]any `json:"posts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from %s: %w", src.Name, err)
	}

	base, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid source url %s: %w", src.URL, err)
	}

	items := make([]listing.Item, 0, len(payload.Data.Posts))
	for _, entry := range payload.Data.Posts {
		title := stringField(entry, "title")
		id := stringField(entry, "id")
		if id == "" {
			if n, ok := numberField(entry, "id"); ok {
				id = fmt.Sprintf("%d", int64(n))
			}
		}
		if title == "" || id == "" {
			continue
		}

		author := "Unknown"
		if user, ok := entry["user"].(map[string]any); ok {
			author = orUnknown(stringField(user, "nickname"))
		}

		comments := 0
		if n, ok := numberField(entry, "comments_count"); ok {
			comments = int(n)
		}

		items = append(items, listing.Item{
			Title:      title,
			Link:       fmt.Sprintf("%s://%s/posts/%s", base.Scheme, base.Host, id),
			Meta:       fmt.Sprintf("%s • %d 评论", author, comments),
			Author:     author,
			SourceName: src.Name,
			Type:       src.Type,
			Region:     src.Region,
			Timestamp:  parseTimestamp(stringField(entry, "published_at")),
		})
	}

	return s.limit(items), nil
}

// sniffEntries extracts the listing array from whichever container layout
// the payload uses.
func sniffEntries(payload any) []any {
	if list, ok := payload.([]any); ok {
		return list
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}

	if list := arrayField(obj, "jobs"); list != nil {
		return list
	}
	// Reddit layout: data.children[].data
	if data, ok := obj["data"].(map[string]any); ok {
		if children, ok := data["children"].([]any); ok {
			entries := make([]any, 0, len(children))
			for _, child := range children {
				if wrapper, ok := child.(map[string]any); ok {
					if inner, ok := wrapper["data"]; ok {
						entries = append(entries, inner)
					}
				}
			}
			return entries
		}
	}
	if list := arrayField(obj, "data", "results", "listings"); list != nil {
		return list
	}
	return nil
}

// tagFilter pulls the topical tag list out of the source URL's tag
// parameter, with the fleet's historical default when absent.
func tagFilter(sourceURL string) []string {
	parsed, err := url.Parse(sourceURL)
	if err == nil {
		if raw := parsed.Query().Get("tag"); raw != "" {
			tags := strings.Split(strings.ToLower(raw), ",")
			for i := range tags {
				tags[i] = strings.TrimSpace(tags[i])
			}
			return tags
		}
	}
	return []string{"frontend", "react", "vue", "javascript"}
}

func matchesAnyTag(text string, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(text, tag) {
			return true
		}
	}
	return false
}

func stringField(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := entry[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func numberField(entry map[string]any, key string) (float64, bool) {
	value, ok := entry[key].(float64)
	return value, ok
}

func arrayField(entry map[string]any, keys ...string) []any {
	for _, key := range keys {
		if value, ok := entry[key].([]any); ok {
			return value
		}
	}
	return nil
}

func stringSliceField(entry map[string]any, key string) []string {
	raw, ok := entry[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}
