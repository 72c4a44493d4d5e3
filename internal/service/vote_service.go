package service

import (
	"context"
	"errors"
	"log"
	"time"

	"shareabyte/config"
	"shareabyte/internal/cache"
	"shareabyte/internal/domain"
	"shareabyte/internal/repository"

	"gorm.io/gorm"
)

// VoteResult is the structured outcome of a vote. The handler returns it
// as-is; nothing from the resolution flow escapes as an error.
type VoteResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ScoreChange int    `json:"scoreChange,omitempty"`
}

type VoteService struct {
	db    *gorm.DB
	cache *cache.Cache
	cfg   *config.ScoreConfig
}

func NewVoteService(db *gorm.DB, c *cache.Cache, cfg *config.ScoreConfig) *VoteService {
	return &VoteService{db: db, cache: c, cfg: cfg}
}

// VoteOnNotification resolves a vote on one of the acting user's
// notifications: the sender's reputation is adjusted by a policy constant and
// the notification is deleted. The notification is single-use; once consumed
// it cannot be voted on again. Score update and delete run in one
// transaction, so a failed adjustment leaves the notification intact and the
// vote retryable.
func (s *VoteService) VoteOnNotification(actingUserID, notificationID uint, voteType string) VoteResult {
	if !domain.ValidVoteType(voteType) {
		return VoteResult{Success: false, Message: "Invalid vote type"}
	}
	notifications := repository.NewNotificationRepository(s.db)
	n, err := notifications.GetForRecipient(notificationID, actingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VoteResult{Success: false, Message: "Notification not found"}
		}
		log.Printf("[vote] load notification %d failed: %v", notificationID, err)
		return VoteResult{Success: false, Message: "Failed to process vote"}
	}
	if n.SenderID == nil {
		return VoteResult{Success: false, Message: "Notification has no sender"}
	}

	delta := s.cfg.UpvotePoints
	if voteType == domain.VoteDownvote {
		delta = -s.cfg.DownvotePenalty
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		scores := repository.NewScoreRepository(tx)
		score, err := scores.GetByUserID(*n.SenderID)
		if err != nil {
			return err
		}
		if err := scores.SetScore(score.ID, ApplyAdjustment(score.Score, delta), time.Now()); err != nil {
			return err
		}
		return repository.NewNotificationRepository(tx).Delete(n.ID, actingUserID)
	})
	if err != nil {
		log.Printf("[vote] resolving vote on notification %d failed: %v", notificationID, err)
		return VoteResult{Success: false, Message: "Failed to process vote"}
	}

	s.cache.Delete(context.Background(), LeaderboardCacheKey)

	verb := "upvoted"
	if voteType == domain.VoteDownvote {
		verb = "downvoted"
	}
	return VoteResult{
		Success:     true,
		Message:     "Successfully " + verb + " the notification",
		ScoreChange: delta,
	}
}
