package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	RecipientID   uint           `gorm:"not null;index" json:"recipient_id"`
	SenderID      *uint          `gorm:"index" json:"sender_id"`
	Type          string         `gorm:"size:50;not null;index" json:"type"` // post_completed, message_received, system
	Content       string         `gorm:"type:text;not null" json:"content"`
	IsRead        bool           `gorm:"default:false" json:"is_read"`
	RelatedPostID string         `gorm:"size:64" json:"related_post_id"` // loose reference; may dangle after post delete
	Metadata      string         `gorm:"type:text" json:"metadata"`      // JSON snapshot, shape keyed by Type
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Recipient User  `gorm:"foreignKey:RecipientID" json:"-"`
	Sender    *User `gorm:"foreignKey:SenderID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

// PostSnapshot is the metadata payload of a post_completed notification:
// the post's descriptive fields captured at completion time. Nil fields are
// encoded as explicit JSON nulls so consumers always see the same shape.
type PostSnapshot struct {
	PostTitle       *string `json:"postTitle"`
	PostDescription *string `json:"postDescription"`
	PostCategory    *string `json:"postCategory"`
	Location        *string `json:"location"`
	GoBadDate       *string `json:"goBadDate"` // RFC 3339 or null
	FoodAllergens   *string `json:"foodAllergens"`
}

// SnapshotOf captures p's descriptive fields. Empty strings become nulls.
func SnapshotOf(p *Post) PostSnapshot {
	s := PostSnapshot{
		PostTitle:       nullable(p.Title),
		PostDescription: nullable(p.Description),
		PostCategory:    nullable(p.Category),
		Location:        nullable(p.Location),
		FoodAllergens:   nullable(p.FoodAllergens),
	}
	if p.GoBadDate != nil {
		d := p.GoBadDate.UTC().Format(time.RFC3339)
		s.GoBadDate = &d
	}
	return s
}

func (s PostSnapshot) JSON() string {
	b, _ := json.Marshal(s)
	return string(b)
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
