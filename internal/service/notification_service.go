package service

import (
	"context"
	"fmt"

	"shareabyte/internal/domain"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"
)

type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	fcm      *FCMService
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, fcm *FCMService) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, fcm: fcm}
}

// Notify persists a notification and attempts a push. The push is best-effort.
func (s *NotificationService) Notify(n *models.Notification) error {
	if err := s.repo.Create(n); err != nil {
		return err
	}
	s.sendPush(n)
	return nil
}

func (s *NotificationService) sendPush(n *models.Notification) {
	if s.fcm == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(n.RecipientID)
	if err != nil || u.FCMToken == "" {
		return
	}
	_ = s.fcm.SendToUser(context.Background(), u.FCMToken, n.Type, "ShareAByte", n.Content, map[string]string{
		"notification_id": fmt.Sprintf("%d", n.ID),
		"related_post_id": n.RelatedPostID,
	})
}

// NotifyPostCompleted alerts the recipient that a share was archived for them,
// carrying an immutable snapshot of the post's fields at completion time.
func (s *NotificationService) NotifyPostCompleted(post *models.Post, recipient *models.User) error {
	senderID := post.UserID
	return s.Notify(&models.Notification{
		RecipientID:   recipient.ID,
		SenderID:      &senderID,
		Type:          domain.NotificationPostCompleted,
		Content:       fmt.Sprintf("The food sharing post %q has been archived.", post.Title),
		RelatedPostID: fmt.Sprintf("%d", post.ID),
		Metadata:      models.SnapshotOf(post).JSON(),
	})
}

// NotifyMessageReceived alerts the recipient of a new direct message.
func (s *NotificationService) NotifyMessageReceived(msg *models.Message, senderName string) error {
	senderID := msg.SenderID
	n := &models.Notification{
		RecipientID: msg.RecipientID,
		SenderID:    &senderID,
		Type:        domain.NotificationMessageReceived,
		Content:     senderName + " sent you a message",
	}
	if msg.PostID != nil {
		n.RelatedPostID = fmt.Sprintf("%d", *msg.PostID)
	}
	return s.Notify(n)
}
