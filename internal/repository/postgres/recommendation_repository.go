package postgres

import (
	"context"
	"fmt"

	"mediaMatcher/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// ListItemIDs returns every item previously recommended to the user in the
// given domain; the recommendation service consumes it as an exclusion set.
func (r *RecommendationRepository) ListItemIDs(ctx context.Context, userID uint, media domain.MediaType) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&domain.RecommendationRecord{}).
		Where("user_id = ? AND media_type = ?", userID, media).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendation history: %w", err)
	}

	return ids, nil
}

func (r *RecommendationRepository) Save(ctx context.Context, rec domain.RecommendationRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save recommendation record: %w", err)
	}

	return nil
}
