package repository

import (
	"shareabyte/internal/domain"
	"shareabyte/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(m *models.Message) error {
	return r.db.Create(m).Error
}

// GetForUser loads a message only if actingUserID is a party to it.
func (r *MessageRepository) GetForUser(id, actingUserID uint) (*models.Message, error) {
	var m models.Message
	err := r.db.Where("id = ? AND (sender_id = ? OR recipient_id = ?)", id, actingUserID, actingUserID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListForUser returns messages the acting user is party to, newest first.
// Logically deleted messages are excluded.
func (r *MessageRepository) ListForUser(actingUserID uint, limit, offset int) ([]models.Message, error) {
	var list []models.Message
	err := r.db.
		Where("(sender_id = ? OR recipient_id = ?) AND status <> ?", actingUserID, actingUserID, domain.MessageStatusDeleted).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// Thread returns the conversation between the acting user and otherID, oldest first.
func (r *MessageRepository) Thread(actingUserID, otherID uint, limit, offset int) ([]models.Message, error) {
	var list []models.Message
	err := r.db.
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)) AND status <> ?",
			actingUserID, otherID, otherID, actingUserID, domain.MessageStatusDeleted).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// MarkThreadRead flips the read flag on messages sent by otherID to the acting user.
func (r *MessageRepository) MarkThreadRead(actingUserID, otherID uint) error {
	return r.db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND `read` = ?", otherID, actingUserID, false).
		Update("read", true).Error
}

// SetStatus updates a message's status; the acting user must be a party.
func (r *MessageRepository) SetStatus(id, actingUserID uint, status string) error {
	res := r.db.Model(&models.Message{}).
		Where("id = ? AND (sender_id = ? OR recipient_id = ?)", id, actingUserID, actingUserID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-deletes a message; only the recipient may do this.
func (r *MessageRepository) Delete(id, recipientID uint) error {
	res := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).Delete(&models.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UnreadCount counts unread messages addressed to the acting user.
func (r *MessageRepository) UnreadCount(actingUserID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Message{}).
		Where("recipient_id = ? AND `read` = ? AND status = ?", actingUserID, false, domain.MessageStatusActive).
		Count(&n).Error
	return n, err
}
