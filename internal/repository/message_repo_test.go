package repository

import (
	"testing"

	"shareabyte/internal/domain"
	"shareabyte/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ShareScore{},
		&models.Post{},
		&models.Message{},
		&models.Notification{},
	))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB) (a, b, c models.User) {
	t.Helper()
	a = models.User{Email: "a@x.com", Username: "a", Role: domain.RoleUser}
	b = models.User{Email: "b@x.com", Username: "b", Role: domain.RoleUser}
	c = models.User{Email: "c@x.com", Username: "c", Role: domain.RoleUser}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&c).Error)
	return a, b, c
}

// Messages are visible only to their two parties.
func TestMessageTenantScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	a, b, outsider := seedUsers(t, db)

	m := models.Message{SenderID: a.ID, RecipientID: b.ID, Content: "hi", Status: domain.MessageStatusActive}
	require.NoError(t, repo.Create(&m))

	for _, party := range []uint{a.ID, b.ID} {
		got, err := repo.GetForUser(m.ID, party)
		require.NoError(t, err)
		assert.Equal(t, m.ID, got.ID)
	}

	_, err := repo.GetForUser(m.ID, outsider.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := repo.ListForUser(outsider.ID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMessageThreadMarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	a, b, _ := seedUsers(t, db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Message{
			SenderID: b.ID, RecipientID: a.ID, Content: "msg", Status: domain.MessageStatusActive,
		}))
	}
	unread, err := repo.UnreadCount(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	require.NoError(t, repo.MarkThreadRead(a.ID, b.ID))

	unread, err = repo.UnreadCount(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	// b's own view of the thread is unaffected by a's read state
	thread, err := repo.Thread(b.ID, a.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, thread, 3)
}

// Only the recipient may hard-delete a message.
func TestMessageDeleteRecipientOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	a, b, _ := seedUsers(t, db)

	m := models.Message{SenderID: a.ID, RecipientID: b.ID, Content: "bye", Status: domain.MessageStatusActive}
	require.NoError(t, repo.Create(&m))

	err := repo.Delete(m.ID, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "sender cannot delete")

	require.NoError(t, repo.Delete(m.ID, b.ID))
	_, err = repo.GetForUser(m.ID, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMessageArchiveHidesFromList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	a, b, _ := seedUsers(t, db)

	m := models.Message{SenderID: a.ID, RecipientID: b.ID, Content: "old", Status: domain.MessageStatusActive}
	require.NoError(t, repo.Create(&m))
	require.NoError(t, repo.SetStatus(m.ID, b.ID, domain.MessageStatusDeleted))

	list, err := repo.ListForUser(b.ID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "logically deleted messages are hidden")
}
