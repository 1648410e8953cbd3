package domain

import (
	"time"

	"gorm.io/datatypes"
)

type WatchlistItem struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	UserID      uint           `gorm:"column:user_id;index;not null" json:"-"`
	ItemID      string         `gorm:"column:item_id;not null" json:"tmdb_id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	ReleaseDate string         `gorm:"column:release_date" json:"release_date"`
	PosterPath  string         `gorm:"column:poster_path" json:"poster_path"`
	Overview    string         `gorm:"column:overview" json:"overview"`
	Rating      float64        `gorm:"column:vote_average" json:"vote_average"`
	Tags        datatypes.JSON `gorm:"column:tags;type:jsonb" json:"genres"`
	AddedAt     time.Time      `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}
