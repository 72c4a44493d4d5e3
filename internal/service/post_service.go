package service

import (
	"errors"
	"fmt"
	"log"

	"shareabyte/internal/apperr"
	"shareabyte/internal/domain"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"

	"gorm.io/gorm"
)

type PostService struct {
	posts    *repository.PostRepository
	users    *repository.UserRepository
	notifier *NotificationService
}

func NewPostService(posts *repository.PostRepository, users *repository.UserRepository, notifier *NotificationService) *PostService {
	return &PostService{posts: posts, users: users, notifier: notifier}
}

// Complete transitions the post to Archived and, when a recipient email is
// given, notifies that user. Validation happens before any mutation: a bad
// recipient leaves the post untouched. The notification itself is best-effort
// and never fails the completion.
func (s *PostService) Complete(actingUserID, postID uint, recipientEmail string) (*models.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, apperr.Wrap(apperr.Dependency, "failed to load post", err)
	}
	if post.UserID != actingUserID {
		return nil, apperr.New(apperr.Authorization, "you can only complete your own posts")
	}
	if post.IsArchived() {
		return nil, apperr.New(apperr.DomainState, "this post is already archived")
	}

	var recipient *models.User
	if recipientEmail != "" {
		recipient, err = s.users.GetByEmail(recipientEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.Validation, fmt.Sprintf("no user found with email %s", recipientEmail))
			}
			return nil, apperr.Wrap(apperr.Dependency, "failed to look up recipient", err)
		}
	}

	if err := s.posts.UpdateStatus(post.ID, actingUserID, domain.PostStatusArchived); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "failed to archive post", err)
	}
	post.Status = domain.PostStatusArchived

	if recipient != nil {
		if err := s.notifier.NotifyPostCompleted(post, recipient); err != nil {
			log.Printf("[post] notification for completed post %d failed: %v", post.ID, err)
		}
	}
	return post, nil
}
