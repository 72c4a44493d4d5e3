package models

import (
	"time"

	"gorm.io/gorm"
)

// ShareScore is a user's reputation ledger entry: one per user, score never
// negative. UserEmail is a denormalized copy of the owner's email kept for
// leaderboard queries; it is refreshed in the same transaction whenever the
// user's email changes.
type ShareScore struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	UserEmail   string         `gorm:"uniqueIndex;size:255;not null" json:"user_email"`
	Score       int            `gorm:"not null;default:0" json:"score"`
	Rank        *int           `json:"rank"`
	LastUpdated *time.Time     `json:"last_updated"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (ShareScore) TableName() string {
	return "share_scores"
}
