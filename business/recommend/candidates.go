package recommend

import (
	"context"

	"mediaMatcher/domain"
	"mediaMatcher/pkg/logger"
)

// collectCandidates queries the catalog for items matching the profile's top
// tags and returns a deduplicated list in first-seen order. Any catalog
// failure degrades to an empty list; exhaustion is decided downstream.
func collectCandidates(
	ctx context.Context,
	catalog CatalogRepository,
	p *Profile,
	cfg DomainConfig,
) []domain.Candidate {

	topTags := p.TopTags(topTagCount)
	if len(topTags) == 0 {
		return nil
	}

	var all []domain.Candidate

	if cfg.PerTagQuery {
		// Books: one subject search per top category, results merged.
		for _, tag := range topTags {
			results, err := catalog.Search(ctx, "subject:"+tag, cfg.PerTagLimit)
			if err != nil {
				logger.Warn("catalog search degraded",
					"media_type", string(cfg.Media),
					"tag", tag,
					"error", err,
				)
				CatalogDegradedTotal.WithLabelValues(string(cfg.Media)).Inc()
				continue
			}
			all = append(all, results...)
		}
	} else {
		// Movies/TV: a single discover call combining all top genres.
		results, err := catalog.DiscoverByTags(ctx, topTags, cfg.MinVoteCount)
		if err != nil {
			logger.Warn("catalog discover degraded",
				"media_type", string(cfg.Media),
				"error", err,
			)
			CatalogDegradedTotal.WithLabelValues(string(cfg.Media)).Inc()
			return nil
		}
		all = results
	}

	// Dedupe by identifier, keeping first-seen order.
	seen := make(map[string]struct{}, len(all))
	unique := all[:0]
	for _, c := range all {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		unique = append(unique, c)
	}

	return unique
}
