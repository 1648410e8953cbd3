package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"mediaMatcher/domain"
	"mediaMatcher/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

// CatalogRepository is the abstract catalog-query capability. Implementations
// must apply their own bounded timeout; the service treats any error as zero
// candidates.
type CatalogRepository interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error)
	DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error)
}

// HistoryRepository stores served recommendations per (user, media type) so
// they can be excluded from later requests. The service consumes it as an
// exclusion set, never as its own state.
type HistoryRepository interface {
	ListItemIDs(ctx context.Context, userID uint, media domain.MediaType) ([]string, error)
	Save(ctx context.Context, rec domain.RecommendationRecord) error
}

// ---- Usecase / Service ----

type Service struct {
	catalogs map[domain.MediaType]CatalogRepository
	configs  map[domain.MediaType]DomainConfig
	history  HistoryRepository

	// rng backs the weighted draw. Seeded once per process; the mutex makes
	// it safe for concurrent requests.
	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

// NewService wires the per-domain catalogs and the history store. rng may be
// nil, in which case a time-seeded source is used; tests inject a fixed seed
// to assert exact outcomes.
func NewService(
	movieCatalog CatalogRepository,
	tvCatalog CatalogRepository,
	bookCatalog CatalogRepository,
	history HistoryRepository,
	rng *rand.Rand,
) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		catalogs: map[domain.MediaType]CatalogRepository{
			domain.MediaTypeMovie: movieCatalog,
			domain.MediaTypeTV:    tvCatalog,
			domain.MediaTypeBook:  bookCatalog,
		},
		configs: map[domain.MediaType]DomainConfig{
			domain.MediaTypeMovie: MovieConfig(),
			domain.MediaTypeTV:    TVConfig(),
			domain.MediaTypeBook:  BookConfig(),
		},
		history: history,
		rng:     rng,
		now:     time.Now,
	}
}

// Recommend turns the user's liked items into exactly one recommendation, or
// ErrNoCandidates when nothing survives collection and scoring. Upstream
// failures never surface as errors here; only invalid input does.
func (s *Service) Recommend(
	ctx context.Context,
	userID uint,
	media domain.MediaType,
	liked []domain.LikedItem,
) (*domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	cfg, ok := s.configs[media]
	if !ok {
		return nil, fmt.Errorf("unknown media type: %s", media)
	}

	// Input validation happens before any upstream call.
	profile, err := BuildProfile(liked)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(profile.ExcludedIDs))
	for id := range profile.ExcludedIDs {
		excluded[id] = struct{}{}
	}

	// Merge previously served recommendations into the exclusion set. A
	// failing history read degrades to liked-only exclusions.
	if s.history != nil {
		ids, err := s.history.ListItemIDs(ctx, userID, media)
		if err != nil {
			logger.Warn("history lookup degraded",
				"media_type", string(media),
				"user_id", userID,
				"error", err,
			)
		}
		for _, id := range ids {
			excluded[id] = struct{}{}
		}
	}

	candidates := collectCandidates(ctx, s.catalogs[media], profile, cfg)

	nowYear := s.now().Year()
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if score, ok := scoreCandidate(c, profile, cfg, excluded, nowYear); ok {
			scored = append(scored, ScoredCandidate{Candidate: c, Score: score})
		}
	}

	winner, ok := s.pick(scored, cfg.TopK)
	if !ok {
		RecommendationsExhaustedTotal.WithLabelValues(string(media)).Inc()
		return nil, ErrNoCandidates
	}

	rec := &domain.Recommendation{
		Candidate: winner.Candidate,
		Reasoning: buildReasoning(winner.Candidate, profile, cfg),
	}

	s.saveHistory(ctx, userID, media, winner.Candidate)

	logger.Debug("recommendation served",
		"media_type", string(media),
		"user_id", userID,
		"item_id", winner.Candidate.ID,
		"score", winner.Score,
		"candidate_count", len(candidates),
		"scored_count", len(scored),
	)
	RecommendationsServedTotal.WithLabelValues(string(media)).Inc()

	return rec, nil
}

func (s *Service) pick(scored []ScoredCandidate, topK int) (ScoredCandidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return selectWinner(scored, topK, s.rng)
}

// saveHistory records the winner so it stays excluded from future requests.
// Best effort: a failed write must not cost the user their recommendation.
func (s *Service) saveHistory(ctx context.Context, userID uint, media domain.MediaType, c domain.Candidate) {
	if s.history == nil {
		return
	}

	tags, err := json.Marshal(c.Tags)
	if err != nil {
		tags = []byte("[]")
	}

	rec := domain.RecommendationRecord{
		UserID:      userID,
		MediaType:   media,
		ItemID:      c.ID,
		Title:       c.Title,
		ReleaseDate: c.ReleaseDate,
		PosterPath:  c.PosterPath,
		Overview:    c.Overview,
		Rating:      c.Rating,
		Tags:        datatypes.JSON(tags),
	}

	if err := s.history.Save(ctx, rec); err != nil {
		logger.Warn("failed to save recommendation history",
			"media_type", string(media),
			"user_id", userID,
			"item_id", c.ID,
			"error", err,
		)
	}
}
