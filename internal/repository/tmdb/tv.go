package tmdb

import (
	"context"

	"mediaMatcher/domain"
)

// TVCatalog adapts the TMDB TV endpoints to the catalog capability.
type TVCatalog struct {
	client *Client
}

func NewTVCatalog(client *Client) *TVCatalog {
	return &TVCatalog{client: client}
}

func (t *TVCatalog) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	return t.client.search(ctx, "/search/tv", query, limit, true)
}

func (t *TVCatalog) DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error) {
	return t.client.discover(ctx, "/discover/tv", tags, minVoteCount, true)
}
