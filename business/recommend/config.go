package recommend

import "mediaMatcher/domain"

// RatingTier grants Bonus when the candidate rating is >= Min. Tiers are
// evaluated in order and only the first hit applies, so keep them sorted by
// descending Min.
type RatingTier struct {
	Min   float64
	Bonus int
}

// AgeBand grants Bonus when (current year - release year) <= MaxAge.
// First hit applies.
type AgeBand struct {
	MaxAge int
	Bonus  int
}

// EraBand grants Bonus when the release year falls in [MinYear, MaxYear].
// MinYear == 0 means open-ended toward the past.
type EraBand struct {
	MinYear int
	MaxYear int
	Bonus   int
}

// Band grants Bonus when a numeric signal falls in [Min, Max].
type Band struct {
	Min   float64
	Max   float64
	Bonus int
}

// DomainConfig parameterizes the shared scorer/selector/reasoner for one
// media type. The three configs differ only in weights, thresholds, and
// vocabulary; the algorithms are identical.
type DomainConfig struct {
	Media domain.MediaType

	// Tag matching with diminishing returns: the n-th matching tag within a
	// single candidate contributes max(TagBase - n*TagStep, TagFloor),
	// multiplied by how often the user liked that tag.
	TagBase  int
	TagStep  int
	TagFloor int

	// Hard rejection rules, applied before any scoring.
	MinRating          float64
	RequireOverview    bool
	RequireReleaseDate bool
	// GuardTag suppresses candidates carrying this tag unless the user's own
	// liked set contains it. Asymmetric on purpose (TV reality shows).
	GuardTag string

	RatingTiers []RatingTier

	// Recency is either relative (AgeBands + classic threshold, movies/TV)
	// or absolute publication eras (EraBands, books). Empty slices skip the
	// component entirely.
	AgeBands      []AgeBand
	ClassicMinAge int
	ClassicBonus  int
	EraBands      []EraBand

	PopularityBands []Band
	PageBands       []Band

	NativeLanguage       string
	ForeignLanguageBonus int
	DomesticCountry      string
	ForeignOriginBonus   int

	// Book-only author overlap: deliberately favors discovery, so NO shared
	// author scores higher than a known one.
	AuthorNewBonus   int
	AuthorKnownBonus int

	// Candidate collection.
	MinVoteCount int
	PerTagQuery  bool
	PerTagLimit  int

	// Selection.
	TopK int

	// Reasoner thresholds.
	RecentYear  int
	ClassicYear int
	HighRating  float64
}

const (
	topTagCount = 3

	movieMinVoteCount = 100
	tvMinVoteCount    = 50
	bookPerTagLimit   = 20

	movieTopK = 12
	tvTopK    = 10
	bookTopK  = 8

	tvRealityGenreID = "10764"
)

func MovieConfig() DomainConfig {
	return DomainConfig{
		Media:              domain.MediaTypeMovie,
		TagBase:            20,
		TagStep:            4,
		TagFloor:           8,
		MinRating:          6.0,
		RequireOverview:    true,
		RequireReleaseDate: true,
		RatingTiers: []RatingTier{
			{Min: 8.5, Bonus: 25},
			{Min: 8.0, Bonus: 20},
			{Min: 7.5, Bonus: 15},
			{Min: 7.0, Bonus: 10},
			{Min: 6.5, Bonus: 5},
		},
		AgeBands: []AgeBand{
			{MaxAge: 2, Bonus: 8},
			{MaxAge: 5, Bonus: 5},
			{MaxAge: 10, Bonus: 3},
		},
		ClassicMinAge: 30,
		ClassicBonus:  10,
		PopularityBands: []Band{
			{Min: 20, Max: 100, Bonus: 5},
			{Min: 10, Max: 200, Bonus: 2},
		},
		NativeLanguage:       "en",
		ForeignLanguageBonus: 7,
		MinVoteCount:         movieMinVoteCount,
		TopK:                 movieTopK,
		RecentYear:           2022,
		ClassicYear:          1990,
		HighRating:           8.0,
	}
}

func TVConfig() DomainConfig {
	return DomainConfig{
		Media:           domain.MediaTypeTV,
		TagBase:         18,
		TagStep:         3,
		TagFloor:        6,
		MinRating:       6.0,
		RequireOverview: true,
		GuardTag:        tvRealityGenreID,
		RatingTiers: []RatingTier{
			{Min: 8.5, Bonus: 22},
			{Min: 8.0, Bonus: 18},
			{Min: 7.5, Bonus: 14},
			{Min: 7.0, Bonus: 10},
			{Min: 6.5, Bonus: 6},
		},
		AgeBands: []AgeBand{
			{MaxAge: 1, Bonus: 10},
			{MaxAge: 3, Bonus: 6},
			{MaxAge: 7, Bonus: 4},
		},
		ClassicMinAge: 20,
		ClassicBonus:  8,
		PopularityBands: []Band{
			{Min: 15, Max: 80, Bonus: 6},
			{Min: 5, Max: 150, Bonus: 3},
		},
		NativeLanguage:       "en",
		ForeignLanguageBonus: 8,
		DomesticCountry:      "US",
		ForeignOriginBonus:   8,
		MinVoteCount:         tvMinVoteCount,
		TopK:                 tvTopK,
		RecentYear:           2023,
		ClassicYear:          2000,
		HighRating:           8.0,
	}
}

func BookConfig() DomainConfig {
	return DomainConfig{
		Media:    domain.MediaTypeBook,
		TagBase:  15,
		TagStep:  3,
		TagFloor: 5,
		RatingTiers: []RatingTier{
			{Min: 4.5, Bonus: 15},
			{Min: 4.0, Bonus: 10},
			{Min: 3.5, Bonus: 5},
		},
		EraBands: []EraBand{
			{MinYear: 2020, MaxYear: 2024, Bonus: 3},
			{MinYear: 2010, MaxYear: 2019, Bonus: 2},
			{MinYear: 1990, MaxYear: 2009, Bonus: 1},
			{MinYear: 0, MaxYear: 1989, Bonus: 4},
		},
		PageBands: []Band{
			{Min: 200, Max: 400, Bonus: 3},
			{Min: 150, Max: 600, Bonus: 1},
		},
		NativeLanguage:       "en",
		ForeignLanguageBonus: 5,
		AuthorNewBonus:       8,
		AuthorKnownBonus:     3,
		PerTagQuery:          true,
		PerTagLimit:          bookPerTagLimit,
		TopK:                 bookTopK,
		RecentYear:           2020,
		ClassicYear:          1979,
		HighRating:           4.3,
	}
}
