package models

import (
	"time"

	"shareabyte/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Email           string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username        string         `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash    string         `gorm:"size:255" json:"-"`
	FirstName       string         `gorm:"size:100" json:"first_name"`
	LastName        string         `gorm:"size:100" json:"last_name"`
	Role            string         `gorm:"size:20;not null;index" json:"role"` // USER | ADMIN
	AvatarURL       string         `gorm:"size:512" json:"avatar_url"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at"`
	FCMToken        string         `gorm:"size:512" json:"-"` // For push notifications
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	ShareScore *ShareScore `gorm:"foreignKey:UserID" json:"share_score,omitempty"`
}

func (u *User) IsAdmin() bool { return u.Role == domain.RoleAdmin }

// DisplayName returns the user's full name, falling back to the username.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
