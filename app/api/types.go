package api

import (
	"context"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// FetchService abstracts the fetch layer so handlers can be tested without
// network access.
type FetchService interface {
	FetchAll(ctx context.Context, sources []source.Source) []listing.Item
}

type Handler struct {
	catalog    *source.Catalog
	service    FetchService
	classifier *listing.Classifier
}

// OpportunitiesResponse is the primary API payload: both accepted sets,
// newest first.
type OpportunitiesResponse struct {
	Jobs        []listing.Item `json:"jobs"`
	Ideas       []listing.Item `json:"ideas"`
	Total       int            `json:"total"`
	Sources     int            `json:"sources"`
	GeneratedAt string         `json:"generated_at"`
}
