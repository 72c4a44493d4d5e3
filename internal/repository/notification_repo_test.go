package repository

import (
	"testing"

	"shareabyte/internal/domain"
	"shareabyte/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationRecipientScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	a, b, _ := seedUsers(t, db)

	n := models.Notification{RecipientID: b.ID, SenderID: &a.ID, Type: domain.NotificationSystem, Content: "hello"}
	require.NoError(t, repo.Create(&n))

	got, err := repo.GetForRecipient(n.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, n.ID, got.ID)

	_, err = repo.GetForRecipient(n.ID, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "sender is not the tenant")

	err = repo.Delete(n.ID, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "only the recipient deletes")

	require.NoError(t, repo.Delete(n.ID, b.ID))
	_, err = repo.GetForRecipient(n.ID, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNotificationMarkReadAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	a, b, _ := seedUsers(t, db)

	first := models.Notification{RecipientID: b.ID, SenderID: &a.ID, Type: domain.NotificationSystem, Content: "one"}
	second := models.Notification{RecipientID: b.ID, SenderID: &a.ID, Type: domain.NotificationSystem, Content: "two"}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	unread, err := repo.UnreadCount(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	require.NoError(t, repo.MarkRead(first.ID, b.ID))
	unread, _ = repo.UnreadCount(b.ID)
	assert.EqualValues(t, 1, unread)

	err = repo.MarkRead(second.ID, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "non-recipient cannot mark read")
}
