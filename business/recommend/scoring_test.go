package recommend

import (
	"testing"

	"mediaMatcher/domain"
)

const testYear = 2024

func actionProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := BuildProfile([]domain.LikedItem{
		{ID: "101", Title: "First", Tags: []string{"28"}, Rating: 8.1},
		{ID: "102", Title: "Second", Tags: []string{"28"}, Rating: 8.4},
		{ID: "103", Title: "Third", Tags: []string{"28"}, Rating: 8.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestScoreCandidateSpecExample(t *testing.T) {
	// Three liked action movies; one candidate tagged [28, 12], rated 8.6,
	// released 2023, English, popularity 45.
	p := actionProfile(t)
	c := domain.Candidate{
		ID:          "900",
		Title:       "Winner",
		Overview:    "An action adventure.",
		ReleaseDate: "2023-06-01",
		Tags:        []string{"28", "12"},
		Rating:      8.6,
		Popularity:  45,
		Language:    "en",
	}

	score, ok := scoreCandidate(c, p, MovieConfig(), p.ExcludedIDs, testYear)
	if !ok {
		t.Fatal("candidate rejected, want accepted")
	}

	// genre: (20-4)*3 = 48; rating tier 8.5 = 25; age 1 <= 2 = 8; popularity
	// band 20..100 = 5; native language = 0.
	if want := 48 + 25 + 8 + 5; score != want {
		t.Errorf("score = %d, want %d", score, want)
	}
}

func TestScoreCandidateDeterministic(t *testing.T) {
	p := actionProfile(t)
	c := domain.Candidate{
		ID: "900", Overview: "x", ReleaseDate: "2019-01-01",
		Tags: []string{"28"}, Rating: 7.2, Popularity: 12,
	}

	first, ok1 := scoreCandidate(c, p, MovieConfig(), p.ExcludedIDs, testYear)
	second, ok2 := scoreCandidate(c, p, MovieConfig(), p.ExcludedIDs, testYear)
	if ok1 != ok2 || first != second {
		t.Errorf("scoring not deterministic: %d/%v vs %d/%v", first, ok1, second, ok2)
	}
}

func TestScoreCandidateDiminishingReturns(t *testing.T) {
	p, err := BuildProfile([]domain.LikedItem{
		{ID: "1", Tags: []string{"28", "12", "878"}},
		{ID: "2", Tags: []string{"28", "12", "878"}},
		{ID: "3", Tags: []string{"28", "12", "878"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := MovieConfig()
	base := domain.Candidate{
		ID: "x", Overview: "x", ReleaseDate: "2012-01-01", Rating: 6.2, Popularity: 500,
	}

	one := base
	one.Tags = []string{"28"}
	two := base
	two.Tags = []string{"28", "12"}
	three := base
	three.Tags = []string{"28", "12", "878"}

	s1, _ := scoreCandidate(one, p, cfg, nil, testYear)
	s2, _ := scoreCandidate(two, p, cfg, nil, testYear)
	s3, _ := scoreCandidate(three, p, cfg, nil, testYear)

	// Each tag counts 3 times in the profile; per-match increments are
	// 16, 12, 8 — strictly diminishing, floor-bounded.
	if s1 != 16*3 {
		t.Errorf("one-tag score = %d, want %d", s1, 16*3)
	}
	if s2-s1 != 12*3 {
		t.Errorf("second-tag increment = %d, want %d", s2-s1, 12*3)
	}
	if s3-s2 != 8*3 {
		t.Errorf("third-tag increment = %d, want %d", s3-s2, 8*3)
	}
	if !(s2-s1 < s1 && s3-s2 < s2-s1) {
		t.Error("per-match increments are not diminishing")
	}
}

func TestScoreCandidateHardRejections(t *testing.T) {
	p := actionProfile(t)
	cfg := MovieConfig()

	good := domain.Candidate{
		ID: "500", Overview: "x", ReleaseDate: "2020-01-01",
		Tags: []string{"28"}, Rating: 7.5,
	}

	tests := []struct {
		name   string
		mutate func(*domain.Candidate)
	}{
		{"rating below floor", func(c *domain.Candidate) { c.Rating = 5.9 }},
		{"missing overview", func(c *domain.Candidate) { c.Overview = "" }},
		{"missing release date", func(c *domain.Candidate) { c.ReleaseDate = "" }},
		{"excluded identifier", func(c *domain.Candidate) { c.ID = "101" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mutate(&c)
			if _, ok := scoreCandidate(c, p, cfg, p.ExcludedIDs, testYear); ok {
				t.Error("candidate accepted, want rejected")
			}
		})
	}

	if _, ok := scoreCandidate(good, p, cfg, p.ExcludedIDs, testYear); !ok {
		t.Error("control candidate rejected, want accepted")
	}
}

func TestTVRealityGuardIsAsymmetric(t *testing.T) {
	cfg := TVConfig()

	reality := domain.Candidate{
		ID: "700", Overview: "x", ReleaseDate: "2021-01-01",
		Tags: []string{"10764"}, Rating: 7.0,
	}
	scripted := domain.Candidate{
		ID: "701", Overview: "x", ReleaseDate: "2021-01-01",
		Tags: []string{"18"}, Rating: 7.0,
	}

	// No reality tag in the liked set: reality candidates are suppressed.
	scriptedProfile, _ := BuildProfile([]domain.LikedItem{
		{ID: "1", Tags: []string{"18"}},
		{ID: "2", Tags: []string{"18"}},
		{ID: "3", Tags: []string{"35"}},
	})
	if _, ok := scoreCandidate(reality, scriptedProfile, cfg, nil, testYear); ok {
		t.Error("reality candidate accepted against scripted-only profile")
	}

	// Reality tag present in the liked set: both kinds stay eligible.
	realityProfile, _ := BuildProfile([]domain.LikedItem{
		{ID: "1", Tags: []string{"10764"}},
		{ID: "2", Tags: []string{"18"}},
		{ID: "3", Tags: []string{"18"}},
	})
	if _, ok := scoreCandidate(reality, realityProfile, cfg, nil, testYear); !ok {
		t.Error("reality candidate rejected despite reality input")
	}
	if _, ok := scoreCandidate(scripted, realityProfile, cfg, nil, testYear); !ok {
		t.Error("scripted candidate rejected despite matching tags")
	}
}

func TestScoreCandidateZeroScoreDropped(t *testing.T) {
	p := actionProfile(t)

	// No tag overlap, rating below every tier, mid-age, out-of-band
	// popularity, native language: nothing contributes.
	c := domain.Candidate{
		ID: "800", Overview: "x", ReleaseDate: "2012-01-01",
		Tags: []string{"99"}, Rating: 6.2, Popularity: 500, Language: "en",
	}

	if score, ok := scoreCandidate(c, p, MovieConfig(), nil, testYear); ok {
		t.Errorf("zero-contribution candidate accepted with score %d", score)
	}
}

func TestScoreCandidateMalformedYearSkipsRecency(t *testing.T) {
	p := actionProfile(t)

	c := domain.Candidate{
		ID: "801", Overview: "x", ReleaseDate: "soon",
		Tags: []string{"28"}, Rating: 7.0,
	}

	score, ok := scoreCandidate(c, p, MovieConfig(), nil, testYear)
	if !ok {
		t.Fatal("candidate rejected, want accepted")
	}
	// genre (20-4)*3 + rating tier 7.0; no recency bonus either way.
	if want := 48 + 10; score != want {
		t.Errorf("score = %d, want %d", score, want)
	}
}

func TestScoreBookAuthorDiscoveryBonus(t *testing.T) {
	p, err := BuildProfile([]domain.LikedItem{
		{ID: "b1", Title: "One", Tags: []string{"Fiction"}, Authors: []string{"Le Guin"}},
		{ID: "b2", Title: "Two", Tags: []string{"Fiction"}, Authors: []string{"Le Guin"}},
		{ID: "b3", Title: "Three", Tags: []string{"Fantasy"}, Authors: []string{"Tolkien"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := BookConfig()
	base := domain.Candidate{
		ID: "v1", Overview: "x", ReleaseDate: "2015",
		Tags: []string{"Fiction"}, Rating: 4.1, PageCount: 320, Language: "en",
	}

	known := base
	known.Authors = []string{"Le Guin"}
	fresh := base
	fresh.Authors = []string{"Jemisin"}

	knownScore, _ := scoreCandidate(known, p, cfg, nil, testYear)
	freshScore, _ := scoreCandidate(fresh, p, cfg, nil, testYear)

	if freshScore-knownScore != cfg.AuthorNewBonus-cfg.AuthorKnownBonus {
		t.Errorf("discovery margin = %d, want %d", freshScore-knownScore, cfg.AuthorNewBonus-cfg.AuthorKnownBonus)
	}

	// tags (15-3)*2 + known author 3 + rating 4.0 tier 10 + era 2010-2019
	// bonus 2 + page band 3.
	if want := 24 + 3 + 10 + 2 + 3; knownScore != want {
		t.Errorf("known-author score = %d, want %d", knownScore, want)
	}
}

func TestScoreBookEraAndLanguage(t *testing.T) {
	p, err := BuildProfile([]domain.LikedItem{
		{ID: "b1", Tags: []string{"Fiction"}},
		{ID: "b2", Tags: []string{"Fiction"}},
		{ID: "b3", Tags: []string{"Fiction"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := BookConfig()
	c := domain.Candidate{
		ID: "v2", Overview: "x", ReleaseDate: "1968",
		Tags: []string{"Fiction"}, Rating: 4.6, PageCount: 700, Language: "fr",
	}

	score, ok := scoreCandidate(c, p, cfg, nil, testYear)
	if !ok {
		t.Fatal("candidate rejected, want accepted")
	}
	// tags (15-3)*3 + no-author discovery 8 + rating 4.5 tier 15 +
	// pre-1990 era 4 + no page band + foreign language 5.
	if want := 36 + 8 + 15 + 4 + 5; score != want {
		t.Errorf("score = %d, want %d", score, want)
	}
}
