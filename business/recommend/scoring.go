package recommend

import (
	"strconv"

	"mediaMatcher/domain"
)

// ScoredCandidate pairs a candidate with its computed desirability score.
type ScoredCandidate struct {
	Candidate domain.Candidate
	Score     int
}

// scoreCandidate applies the hard rejection rules and then sums the scoring
// components. The second return is false when the candidate is rejected or
// scores <= 0. Deterministic given (candidate, profile, nowYear); only the
// final selection draw is random.
func scoreCandidate(
	c domain.Candidate,
	p *Profile,
	cfg DomainConfig,
	excluded map[string]struct{},
	nowYear int,
) (int, bool) {

	if _, ok := excluded[c.ID]; ok {
		return 0, false
	}
	if cfg.MinRating > 0 && c.Rating < cfg.MinRating {
		return 0, false
	}
	if cfg.RequireOverview && c.Overview == "" {
		return 0, false
	}
	if cfg.RequireReleaseDate && c.ReleaseDate == "" {
		return 0, false
	}
	if cfg.GuardTag != "" && p.TagCounts[cfg.GuardTag] == 0 && hasTag(c, cfg.GuardTag) {
		return 0, false
	}

	score := 0

	// Tag matching with diminishing returns per candidate.
	matches := 0
	for _, tag := range c.Tags {
		count := p.TagCounts[tag]
		if count == 0 {
			continue
		}
		matches++
		increment := cfg.TagBase - matches*cfg.TagStep
		if increment < cfg.TagFloor {
			increment = cfg.TagFloor
		}
		score += increment * count
	}

	// Author overlap, inverse on purpose: unknown authors score higher. An
	// empty author list counts as no overlap.
	if cfg.AuthorNewBonus > 0 {
		if len(p.SharedAuthors(c)) == 0 {
			score += cfg.AuthorNewBonus
		} else {
			score += cfg.AuthorKnownBonus
		}
	}

	// Rating quality tiers; first hit wins.
	for _, tier := range cfg.RatingTiers {
		if c.Rating >= tier.Min {
			score += tier.Bonus
			break
		}
	}

	// Recency. Unparseable years skip the component silently.
	if year, ok := releaseYear(c.ReleaseDate); ok {
		if len(cfg.AgeBands) > 0 {
			age := nowYear - year
			applied := false
			for _, band := range cfg.AgeBands {
				if age <= band.MaxAge {
					score += band.Bonus
					applied = true
					break
				}
			}
			if !applied && cfg.ClassicMinAge > 0 && age >= cfg.ClassicMinAge {
				score += cfg.ClassicBonus
			}
		}
		for _, era := range cfg.EraBands {
			if year >= era.MinYear && year <= era.MaxYear {
				score += era.Bonus
				break
			}
		}
	}

	// Popularity sweet spot: moderate beats viral or obscure.
	for _, band := range cfg.PopularityBands {
		if c.Popularity >= band.Min && c.Popularity <= band.Max {
			score += band.Bonus
			break
		}
	}

	// Page count sweet spot (books).
	for _, band := range cfg.PageBands {
		pages := float64(c.PageCount)
		if pages >= band.Min && pages <= band.Max {
			score += band.Bonus
			break
		}
	}

	// International content incentives.
	if cfg.ForeignLanguageBonus > 0 && c.Language != "" && c.Language != cfg.NativeLanguage {
		score += cfg.ForeignLanguageBonus
	}
	if cfg.ForeignOriginBonus > 0 && len(c.OriginCountry) > 0 && !containsString(c.OriginCountry, cfg.DomesticCountry) {
		score += cfg.ForeignOriginBonus
	}

	if score <= 0 {
		return 0, false
	}
	return score, true
}

func hasTag(c domain.Candidate, tag string) bool {
	return containsString(c.Tags, tag)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// releaseYear parses the leading year of a date string ("2023-05-01" or
// "2023"). Malformed input reports false; callers skip the bonus.
func releaseYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
