package recommend

import (
	"context"
	"errors"
	"testing"

	"mediaMatcher/domain"
)

// perQueryCatalog returns a different result set per search query, to verify
// the per-tag merge behavior.
type perQueryCatalog struct {
	byQuery map[string][]domain.Candidate
	errs    map[string]error
	queries []string
}

func (f *perQueryCatalog) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	f.queries = append(f.queries, query)
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.byQuery[query], nil
}

func (f *perQueryCatalog) DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error) {
	return nil, errors.New("unexpected discover call")
}

func bookProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := BuildProfile([]domain.LikedItem{
		{ID: "b1", Tags: []string{"Fiction"}},
		{ID: "b2", Tags: []string{"Fiction"}},
		{ID: "b3", Tags: []string{"Mystery"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestCollectCandidatesDedupesFirstSeen(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{
		{ID: "1", Title: "Keep"},
		{ID: "2", Title: "Also"},
		{ID: "1", Title: "Duplicate"},
	}}

	got := collectCandidates(context.Background(), catalog, actionProfile(t), MovieConfig())

	if len(got) != 2 {
		t.Fatalf("candidate count = %d, want 2", len(got))
	}
	if got[0].Title != "Keep" || got[1].Title != "Also" {
		t.Errorf("dedupe broke first-seen order: %v", got)
	}
}

func TestCollectCandidatesMergesPerTagQueries(t *testing.T) {
	catalog := &perQueryCatalog{byQuery: map[string][]domain.Candidate{
		"subject:Fiction": {{ID: "a"}, {ID: "shared"}},
		"subject:Mystery": {{ID: "b"}, {ID: "shared"}},
	}}

	got := collectCandidates(context.Background(), catalog, bookProfile(t), BookConfig())

	if len(catalog.queries) != 2 {
		t.Fatalf("queries = %v, want one per top category", catalog.queries)
	}
	if len(got) != 3 {
		t.Fatalf("candidate count = %d, want 3 after cross-query dedupe", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "shared" || got[2].ID != "b" {
		t.Errorf("merge order = %v", got)
	}
}

func TestCollectCandidatesPartialTagFailure(t *testing.T) {
	catalog := &perQueryCatalog{
		byQuery: map[string][]domain.Candidate{
			"subject:Mystery": {{ID: "b"}},
		},
		errs: map[string]error{
			"subject:Fiction": errors.New("upstream down"),
		},
	}

	// A failing tag query is skipped; the surviving ones still contribute.
	got := collectCandidates(context.Background(), catalog, bookProfile(t), BookConfig())

	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("candidates = %v, want the surviving query's result", got)
	}
}

func TestCollectCandidatesDiscoverFailureReturnsEmpty(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("upstream down")}

	got := collectCandidates(context.Background(), catalog, actionProfile(t), MovieConfig())
	if len(got) != 0 {
		t.Errorf("candidates = %v, want none on discover failure", got)
	}
}
