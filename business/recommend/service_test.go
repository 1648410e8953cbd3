package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"mediaMatcher/domain"
)

type fakeCatalog struct {
	results       []domain.Candidate
	err           error
	searchCalls   int
	discoverCalls int
}

func (f *fakeCatalog) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	f.searchCalls++
	return f.results, f.err
}

func (f *fakeCatalog) DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error) {
	f.discoverCalls++
	return f.results, f.err
}

type fakeHistory struct {
	ids     []string
	listErr error
	saveErr error
	saved   []domain.RecommendationRecord
}

func (f *fakeHistory) ListItemIDs(ctx context.Context, userID uint, media domain.MediaType) ([]string, error) {
	return f.ids, f.listErr
}

func (f *fakeHistory) Save(ctx context.Context, rec domain.RecommendationRecord) error {
	f.saved = append(f.saved, rec)
	return f.saveErr
}

func testService(catalog *fakeCatalog, history *fakeHistory) *Service {
	s := NewService(catalog, catalog, catalog, history, rand.New(rand.NewSource(5)))
	s.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func likedMovies() []domain.LikedItem {
	return []domain.LikedItem{
		{ID: "101", Title: "First", Tags: []string{"28"}, Rating: 8.1},
		{ID: "102", Title: "Second", Tags: []string{"28"}, Rating: 8.4},
		{ID: "103", Title: "Third", Tags: []string{"28"}, Rating: 8.0},
	}
}

func strongCandidate(id string) domain.Candidate {
	return domain.Candidate{
		ID: id, Title: "Pick " + id, Overview: "x",
		ReleaseDate: "2023-01-01", Tags: []string{"28"},
		Rating: 8.6, Popularity: 45, Language: "en",
	}
}

func TestRecommendInsufficientInput(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := testService(catalog, &fakeHistory{})

	liked := likedMovies()[:2]
	_, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, liked)
	if !errors.Is(err, ErrInsufficientInput) {
		t.Fatalf("expected ErrInsufficientInput, got %v", err)
	}

	// Validation must short-circuit before any upstream call.
	if catalog.searchCalls+catalog.discoverCalls != 0 {
		t.Error("catalog queried despite invalid input")
	}
}

func TestRecommendUnknownMediaType(t *testing.T) {
	svc := testService(&fakeCatalog{}, &fakeHistory{})

	if _, err := svc.Recommend(context.Background(), 1, domain.MediaType("vinyl"), likedMovies()); err == nil {
		t.Fatal("expected error for unknown media type")
	}
}

func TestRecommendCatalogFailureExhausts(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("upstream down")}
	svc := testService(catalog, &fakeHistory{})

	_, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, likedMovies())
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestRecommendSoleCandidateWins(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{strongCandidate("900")}}
	history := &fakeHistory{}
	svc := testService(catalog, history)

	for i := 0; i < 20; i++ {
		rec, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, likedMovies())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != "900" {
			t.Fatalf("trial %d: recommended %s, want 900", i, rec.ID)
		}
		if rec.Reasoning == "" {
			t.Fatal("missing reasoning")
		}
	}
}

func TestRecommendExcludesLikedItems(t *testing.T) {
	// The only candidate is itself a liked item, so nothing survives.
	catalog := &fakeCatalog{results: []domain.Candidate{strongCandidate("101")}}
	svc := testService(catalog, &fakeHistory{})

	_, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, likedMovies())
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestRecommendExcludesHistory(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{
		strongCandidate("900"),
		strongCandidate("901"),
	}}
	history := &fakeHistory{ids: []string{"900"}}
	svc := testService(catalog, history)

	rec, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, likedMovies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "901" {
		t.Errorf("recommended %s, want the non-history candidate 901", rec.ID)
	}
}

func TestRecommendHistoryReadFailureDegrades(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{strongCandidate("900")}}
	history := &fakeHistory{listErr: errors.New("db down")}
	svc := testService(catalog, history)

	rec, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, likedMovies())
	if err != nil {
		t.Fatalf("history failure surfaced as error: %v", err)
	}
	if rec.ID != "900" {
		t.Errorf("recommended %s, want 900", rec.ID)
	}
}

func TestRecommendPersistsHistory(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{strongCandidate("900")}}
	history := &fakeHistory{}
	svc := testService(catalog, history)

	if _, err := svc.Recommend(context.Background(), 7, domain.MediaTypeMovie, likedMovies()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(history.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(history.saved))
	}
	saved := history.saved[0]
	if saved.UserID != 7 || saved.MediaType != domain.MediaTypeMovie || saved.ItemID != "900" {
		t.Errorf("saved record = %+v", saved)
	}
}

func TestRecommendHistoryWriteFailureIsBestEffort(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{strongCandidate("900")}}
	history := &fakeHistory{saveErr: errors.New("db down")}
	svc := testService(catalog, history)

	rec, err := svc.Recommend(context.Background(), 1, domain.MediaTypeMovie, likedMovies())
	if err != nil {
		t.Fatalf("save failure surfaced as error: %v", err)
	}
	if rec.ID != "900" {
		t.Errorf("recommended %s, want 900", rec.ID)
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	svc := testService(&fakeCatalog{}, &fakeHistory{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Recommend(ctx, 1, domain.MediaTypeMovie, likedMovies()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestRecommendBooksUsePerTagSearch(t *testing.T) {
	catalog := &fakeCatalog{results: []domain.Candidate{{
		ID: "v1", Title: "Found", Overview: "x", ReleaseDate: "2015",
		Tags: []string{"Fiction"}, Rating: 4.2, PageCount: 320, Language: "en",
	}}}
	svc := testService(catalog, &fakeHistory{})

	liked := []domain.LikedItem{
		{ID: "b1", Title: "One", Tags: []string{"Fiction"}},
		{ID: "b2", Title: "Two", Tags: []string{"Fiction"}},
		{ID: "b3", Title: "Three", Tags: []string{"Mystery"}},
	}

	rec, err := svc.Recommend(context.Background(), 1, domain.MediaTypeBook, liked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "v1" {
		t.Errorf("recommended %s, want v1", rec.ID)
	}
	if catalog.searchCalls != 2 {
		t.Errorf("search calls = %d, want one per distinct top category", catalog.searchCalls)
	}
	if catalog.discoverCalls != 0 {
		t.Error("books must never hit the discover path")
	}
}
