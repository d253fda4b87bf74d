package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

const (
	defaultLimit = 200
	maxLimit     = 500
)

func NewHandler(catalog *source.Catalog, service FetchService, classifier *listing.Classifier) *Handler {
	return &Handler{
		catalog:    catalog,
		service:    service,
		classifier: classifier,
	}
}

// GetOpportunities runs the full cycle for the selected slice of the
// catalog: fetch, classify, sort. Most of the work lands on warm cache
// entries, so the endpoint stays responsive at request time.
func (h *Handler) GetOpportunities(c *gin.Context) {
	itemType, ok := parseType(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type, expected 'job' or 'idea'"})
		return
	}
	limit := parseLimit(c.Query("limit"))

	sources := h.catalog.Select(itemType, c.Query("region"))
	result := h.classify(c, sources)

	listing.SortByDateDesc(result.Jobs)
	listing.SortByDateDesc(result.Ideas)
	jobs := truncateItems(result.Jobs, limit)
	ideas := truncateItems(result.Ideas, limit)

	c.JSON(http.StatusOK, OpportunitiesResponse{
		Jobs:        jobs,
		Ideas:       ideas,
		Total:       len(jobs) + len(ideas),
		Sources:     len(sources),
		GeneratedAt: time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetJobs(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	sources := h.catalog.Select(listing.TypeJob, c.Query("region"))
	result := h.classify(c, sources)

	listing.SortByDateDesc(result.Jobs)
	jobs := truncateItems(result.Jobs, limit)

	c.JSON(http.StatusOK, gin.H{
		"jobs":         jobs,
		"total":        len(jobs),
		"sources":      len(sources),
		"generated_at": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetIdeas(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	sources := h.catalog.Select(listing.TypeIdea, c.Query("region"))
	result := h.classify(c, sources)

	listing.SortByDateDesc(result.Ideas)
	ideas := truncateItems(result.Ideas, limit)

	c.JSON(http.StatusOK, gin.H{
		"ideas":        ideas,
		"total":        len(ideas),
		"sources":      len(sources),
		"generated_at": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	sources := h.catalog.All()
	result := h.classify(c, sources)

	accepted := append(result.Jobs, result.Ideas...)

	c.JSON(http.StatusOK, gin.H{
		"stats":        listing.CalculateStats(accepted),
		"sources":      len(sources),
		"generated_at": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"sources":   h.catalog.Count(),
	})
}

func (h *Handler) classify(c *gin.Context, sources []source.Source) listing.Result {
	items := h.service.FetchAll(c.Request.Context(), sources)
	return h.classifier.Run(items)
}

func parseType(raw string) (listing.Type, bool) {
	switch raw {
	case "":
		return "", true
	case string(listing.TypeJob):
		return listing.TypeJob, true
	case string(listing.TypeIdea):
		return listing.TypeIdea, true
	default:
		return "", false
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func truncateItems(items []listing.Item, limit int) []listing.Item {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
