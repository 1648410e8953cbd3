package tmdb

import (
	"context"

	"mediaMatcher/domain"
)

// MovieCatalog adapts the TMDB movie endpoints to the catalog capability.
type MovieCatalog struct {
	client *Client
}

func NewMovieCatalog(client *Client) *MovieCatalog {
	return &MovieCatalog{client: client}
}

func (m *MovieCatalog) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	return m.client.search(ctx, "/search/movie", query, limit, false)
}

func (m *MovieCatalog) DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error) {
	return m.client.discover(ctx, "/discover/movie", tags, minVoteCount, false)
}
