package watchlist

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"mediaMatcher/domain"
)

var (
	ErrAlreadyInWatchlist = errors.New("item already in watchlist")
	ErrNotInWatchlist     = errors.New("item not found in watchlist")
)

const csvOverviewLimit = 100

type Repository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.WatchlistItem, error)
	FindByUserAndItem(ctx context.Context, userID uint, itemID string) (*domain.WatchlistItem, error)
	Create(ctx context.Context, item *domain.WatchlistItem) error
	Delete(ctx context.Context, userID uint, itemID string) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.repo.FindByUser(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID uint, item domain.WatchlistItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	existing, err := s.repo.FindByUserAndItem(ctx, userID, item.ItemID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyInWatchlist
	}

	item.UserID = userID
	return s.repo.Create(ctx, &item)
}

func (s *Service) Remove(ctx context.Context, userID uint, itemID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotInWatchlist
	}

	return nil
}

// ExportCSV renders the user's watchlist as a CSV attachment body, newest
// first, with overviews truncated for readability.
func (s *Service) ExportCSV(ctx context.Context, userID uint) ([]byte, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Title", "Release Date", "Rating", "Added Date", "Overview"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, item := range items {
		overview := item.Overview
		if len(overview) > csvOverviewLimit {
			overview = overview[:csvOverviewLimit] + "..."
		}

		record := []string{
			item.Title,
			item.ReleaseDate,
			strconv.FormatFloat(item.Rating, 'f', 1, 64),
			item.AddedAt.Format("2006-01-02"),
			overview,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
