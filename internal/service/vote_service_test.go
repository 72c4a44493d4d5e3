package service

import (
	"testing"

	"shareabyte/config"
	"shareabyte/internal/domain"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func scoreConfig() *config.ScoreConfig {
	return &config.ScoreConfig{InitialScore: 1000, UpvotePoints: 50, DownvotePenalty: 10}
}

func seedVoteFixture(t *testing.T, db *gorm.DB) (sender, recipient models.User, n models.Notification) {
	t.Helper()
	sender = models.User{Email: "sender@x.com", Username: "sender", Role: domain.RoleUser}
	recipient = models.User{Email: "recipient@x.com", Username: "recipient", Role: domain.RoleUser}
	require.NoError(t, db.Create(&sender).Error)
	require.NoError(t, db.Create(&recipient).Error)
	_, err := repository.NewScoreRepository(db).CreateForUser(sender.ID, sender.Email, 1000)
	require.NoError(t, err)

	n = models.Notification{
		RecipientID: recipient.ID,
		SenderID:    &sender.ID,
		Type:        domain.NotificationPostCompleted,
		Content:     "The food sharing post \"Soup\" has been archived.",
	}
	require.NoError(t, db.Create(&n).Error)
	return sender, recipient, n
}

func TestVoteUpvote(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	sender, recipient, n := seedVoteFixture(t, db)

	res := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteUpvote)
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "upvoted")
	assert.Equal(t, 50, res.ScoreChange)

	score, err := repository.NewScoreRepository(db).GetByUserID(sender.ID)
	require.NoError(t, err)
	assert.Equal(t, 1050, score.Score)

	// notification consumed
	var count int64
	db.Model(&models.Notification{}).Where("id = ?", n.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestVoteDownvote(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	sender, recipient, n := seedVoteFixture(t, db)

	res := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteDownvote)
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "downvoted")
	assert.Equal(t, -10, res.ScoreChange)

	score, err := repository.NewScoreRepository(db).GetByUserID(sender.ID)
	require.NoError(t, err)
	assert.Equal(t, 990, score.Score)
}

func TestVoteDownvoteClampsAtZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	sender, recipient, n := seedVoteFixture(t, db)
	require.NoError(t, db.Model(&models.ShareScore{}).Where("user_id = ?", sender.ID).Update("score", 3).Error)

	res := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteDownvote)
	assert.True(t, res.Success)

	score, err := repository.NewScoreRepository(db).GetByUserID(sender.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
}

// A consumed notification cannot be voted on again: it no longer exists.
func TestVoteAtMostOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	sender, recipient, n := seedVoteFixture(t, db)

	first := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteUpvote)
	require.True(t, first.Success)

	second := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteUpvote)
	assert.False(t, second.Success)
	assert.Equal(t, "Notification not found", second.Message)

	score, err := repository.NewScoreRepository(db).GetByUserID(sender.ID)
	require.NoError(t, err)
	assert.Equal(t, 1050, score.Score, "score applied exactly once")
}

func TestVoteNoSender(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	_, recipient, _ := seedVoteFixture(t, db)

	n := models.Notification{
		RecipientID: recipient.ID,
		Type:        domain.NotificationSystem,
		Content:     "welcome",
	}
	require.NoError(t, db.Create(&n).Error)

	res := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteUpvote)
	assert.False(t, res.Success)
	assert.Equal(t, "Notification has no sender", res.Message)
	assert.Zero(t, res.ScoreChange)

	// zero mutations: the notification survives
	var count int64
	db.Model(&models.Notification{}).Where("id = ?", n.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

// Only the recipient sees the notification; anyone else gets "not found".
func TestVoteRecipientScoped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	sender, _, n := seedVoteFixture(t, db)

	res := svc.VoteOnNotification(sender.ID, n.ID, domain.VoteUpvote)
	assert.False(t, res.Success)
	assert.Equal(t, "Notification not found", res.Message)

	var count int64
	db.Model(&models.Notification{}).Where("id = ?", n.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

// A missing share score fails the vote and leaves the notification intact,
// so the vote stays retryable.
func TestVoteMissingScoreLeavesNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVoteService(db, nil, scoreConfig())
	sender, recipient, n := seedVoteFixture(t, db)
	require.NoError(t, db.Unscoped().Where("user_id = ?", sender.ID).Delete(&models.ShareScore{}).Error)

	res := svc.VoteOnNotification(recipient.ID, n.ID, domain.VoteUpvote)
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to process vote", res.Message)

	var count int64
	db.Model(&models.Notification{}).Where("id = ?", n.ID).Count(&count)
	assert.EqualValues(t, 1, count, "notification must survive a failed score update")
}
