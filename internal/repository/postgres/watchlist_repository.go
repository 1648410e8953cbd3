package postgres

import (
	"context"
	"errors"
	"fmt"

	"mediaMatcher/domain"

	"gorm.io/gorm"
)

type WatchlistRepository struct {
	DB *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{DB: db}
}

func (r *WatchlistRepository) FindByUser(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.WatchlistItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find watchlist items: %w", err)
	}

	return items, nil
}

// FindByUserAndItem returns nil when the item is not on the list.
func (r *WatchlistRepository) FindByUserAndItem(ctx context.Context, userID uint, itemID string) (*domain.WatchlistItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var item domain.WatchlistItem
	err := r.DB.WithContext(ctx).
		First(&item, "user_id = ? AND item_id = ?", userID, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find watchlist item: %w", err)
	}

	return &item, nil
}

func (r *WatchlistRepository) Create(ctx context.Context, item *domain.WatchlistItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create watchlist item: %w", err)
	}

	return nil
}

func (r *WatchlistRepository) Delete(ctx context.Context, userID uint, itemID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&domain.WatchlistItem{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete watchlist item: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
