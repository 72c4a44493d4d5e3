package service

import (
	"errors"
	"log"

	"shareabyte/internal/apperr"
	"shareabyte/internal/domain"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"

	"gorm.io/gorm"
)

type MessageService struct {
	messages *repository.MessageRepository
	users    *repository.UserRepository
	posts    *repository.PostRepository
	notifier *NotificationService
}

func NewMessageService(messages *repository.MessageRepository, users *repository.UserRepository, posts *repository.PostRepository, notifier *NotificationService) *MessageService {
	return &MessageService{messages: messages, users: users, posts: posts, notifier: notifier}
}

// Send creates a direct message from the acting user. Self-messaging is
// rejected. The message_received notification is best-effort.
func (s *MessageService) Send(actingUserID, recipientID uint, postID *uint, content string) (*models.Message, error) {
	if recipientID == actingUserID {
		return nil, apperr.New(apperr.Validation, "you cannot message yourself")
	}
	if _, err := s.users.GetByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Validation, "recipient does not exist")
		}
		return nil, apperr.Wrap(apperr.Dependency, "failed to look up recipient", err)
	}
	if postID != nil {
		if _, err := s.posts.GetByID(*postID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.Validation, "referenced post does not exist")
			}
			return nil, apperr.Wrap(apperr.Dependency, "failed to look up post", err)
		}
	}

	m := &models.Message{
		SenderID:    actingUserID,
		RecipientID: recipientID,
		PostID:      postID,
		Content:     content,
		Status:      domain.MessageStatusActive,
	}
	if err := s.messages.Create(m); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "failed to send message", err)
	}

	senderName := ""
	if sender, err := s.users.GetByID(actingUserID); err == nil {
		senderName = sender.DisplayName()
	}
	if err := s.notifier.NotifyMessageReceived(m, senderName); err != nil {
		log.Printf("[message] notification for message %d failed: %v", m.ID, err)
	}
	return m, nil
}

// Thread returns the conversation with otherID and marks the counterpart's
// messages to the acting user as read.
func (s *MessageService) Thread(actingUserID, otherID uint, limit, offset int) ([]models.Message, error) {
	list, err := s.messages.Thread(actingUserID, otherID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkThreadRead(actingUserID, otherID); err != nil {
		log.Printf("[message] mark thread read (%d<-%d) failed: %v", actingUserID, otherID, err)
	}
	return list, nil
}
