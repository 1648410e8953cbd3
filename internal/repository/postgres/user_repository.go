package postgres

import (
	"context"
	"errors"
	"fmt"

	"mediaMatcher/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindOrCreateBySessionID returns the user owning the session, creating one
// on first sight.
func (r *UserRepository) FindOrCreateBySessionID(ctx context.Context, sessionID string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	var user domain.User
	err := r.DB.WithContext(ctx).First(&user, "session_id = ?", sessionID).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	user = domain.User{SessionID: sessionID}
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
