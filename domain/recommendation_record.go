package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RecommendationRecord persists a served recommendation so future requests
// can exclude it. Keyed by (user, media type, item).
type RecommendationRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"column:user_id;index;not null" json:"user_id"`
	MediaType   MediaType      `gorm:"column:media_type;not null" json:"media_type"`
	ItemID      string         `gorm:"column:item_id;not null" json:"item_id"`
	Title       string         `gorm:"column:title" json:"title"`
	ReleaseDate string         `gorm:"column:release_date" json:"release_date"`
	PosterPath  string         `gorm:"column:poster_path" json:"poster_path"`
	Overview    string         `gorm:"column:overview" json:"overview"`
	Rating      float64        `gorm:"column:vote_average" json:"vote_average"`
	Tags        datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
