package service

import (
	"context"
	"testing"
	"time"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database for one test, migrated to the
// full schema. TranslateError matches the production configuration so
// uniqueness violations surface the same way.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Message{}, &domain.Follow{}, &domain.Like{}))
	return db
}

// signupUser creates an account through the real signup path.
func signupUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u, err := NewUserService(db).Signup(context.Background(), username, "password123", username+"@example.com", "")
	require.NoError(t, err)
	return u
}

// postMessageAt inserts a message with an explicit timestamp, so ordering
// tests control the clock.
func postMessageAt(t *testing.T, db *gorm.DB, owner *domain.User, text string, at time.Time) *domain.Message {
	t.Helper()
	msg := &domain.Message{Text: text, UserID: owner.ID, CreatedAt: at}
	require.NoError(t, db.Create(msg).Error)
	return msg
}
