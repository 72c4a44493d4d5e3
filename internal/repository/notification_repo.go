package repository

import (
	"shareabyte/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// GetForRecipient loads a notification only if it is addressed to the acting user.
func (r *NotificationRepository) GetForRecipient(id, recipientID uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) ListByRecipient(recipientID uint, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) UnreadCount(recipientID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", recipientID, false).Count(&n).Error
	return n, err
}

func (r *NotificationRepository) MarkRead(id, recipientID uint) error {
	res := r.db.Model(&models.Notification{}).Where("id = ? AND recipient_id = ?", id, recipientID).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a notification addressed to recipientID.
func (r *NotificationRepository) Delete(id, recipientID uint) error {
	res := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
