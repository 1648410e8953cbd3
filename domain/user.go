package domain

import "time"

// User is an anonymous visitor identified by a session ID. There are no
// accounts or passwords; the session cookie is the whole identity.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"column:session_id;uniqueIndex;not null" json:"session_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
