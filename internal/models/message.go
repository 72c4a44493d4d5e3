package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a directed communication between two users, optionally scoped
// to a post. Sender and recipient are immutable after creation.
type Message struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SenderID    uint           `gorm:"not null;index" json:"sender_id"`
	RecipientID uint           `gorm:"not null;index" json:"recipient_id"`
	PostID      *uint          `gorm:"index" json:"post_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Read        bool           `gorm:"default:false" json:"read"`
	Status      string         `gorm:"size:20;not null;index;default:'active'" json:"status"` // active, archived, deleted
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Sender    User  `gorm:"foreignKey:SenderID" json:"-"`
	Recipient User  `gorm:"foreignKey:RecipientID" json:"-"`
	Post      *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
