package models

import (
	"time"

	"shareabyte/internal/domain"

	"gorm.io/gorm"
)

type Post struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Category      string         `gorm:"size:32;index" json:"category"` // leftovers, perishables
	Location      string         `gorm:"size:255" json:"location"`
	GoBadDate     *time.Time     `json:"go_bad_date"` // expiry; nil means no expiry given
	FoodAllergens string         `gorm:"size:512" json:"food_allergens"`
	Images        string         `gorm:"type:text" json:"images"` // JSON array of URLs
	Status        string         `gorm:"size:20;not null;index;default:'Active'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) IsArchived() bool { return p.Status == domain.PostStatusArchived }

// Expired reports whether the post's go-bad date has passed at t.
func (p *Post) Expired(t time.Time) bool {
	return p.GoBadDate != nil && p.GoBadDate.Before(t)
}
