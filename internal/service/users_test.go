package service

import (
	"context"
	"testing"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupThenAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.Signup(ctx, "Alice", "s3cretpass", "alice@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username, "username is stored lowercased")
	assert.Equal(t, domain.DefaultImageURL, created.ImageURL)
	assert.NotEqual(t, "s3cretpass", created.PasswordHash, "password must never be stored in plaintext")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cretpass")))

	got, err := svc.Authenticate(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestSignupRejectsBlankFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "pass", "a@example.com", "")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.Signup(ctx, "bob", "", "b@example.com", "")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.Signup(ctx, "bob", "pass", "", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSignupDuplicateLeavesNoPartialRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "pass12345", "alice@example.com", "")
	require.NoError(t, err)

	var before int64
	require.NoError(t, db.Model(&domain.User{}).Count(&before).Error)

	// Same username, fresh email
	_, err = svc.Signup(ctx, "alice", "pass12345", "other@example.com", "")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Fresh username, same email
	_, err = svc.Signup(ctx, "alicia", "pass12345", "alice@example.com", "")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	var after int64
	require.NoError(t, db.Model(&domain.User{}).Count(&after).Error)
	assert.Equal(t, before, after, "failed signup must not persist a row")
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	signupUser(t, db, "alice")

	wrongPass, err := svc.Authenticate(ctx, "alice", "not-the-password")
	require.NoError(t, err)
	noUser, err := svc.Authenticate(ctx, "nobody", "whatever")
	require.NoError(t, err)

	assert.Nil(t, wrongPass)
	assert.Nil(t, noUser)
}

func TestUpdateProfileRequiresCurrentPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	alice := signupUser(t, db, "alice")

	_, err := svc.UpdateProfile(ctx, alice, ProfileUpdate{
		Username: "alice2",
		Email:    "alice2@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Nothing committed
	got, err := svc.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	updated, err := svc.UpdateProfile(ctx, alice, ProfileUpdate{
		Username: "alice2",
		Email:    "alice2@example.com",
		Bio:      "hello",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice2@example.com", updated.Email)
	assert.Equal(t, "hello", updated.Bio)
}

func TestUpdateProfileDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	alice := signupUser(t, db, "alice")
	signupUser(t, db, "bob")

	_, err := svc.UpdateProfile(ctx, alice, ProfileUpdate{
		Username: "bob",
		Email:    alice.Email,
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDeleteAccountCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	social := NewSocialService(db)
	reactions := NewReactionService(db)
	messages := NewMessageService(db)
	ctx := context.Background()

	alice := signupUser(t, db, "alice")
	bob := signupUser(t, db, "bob")

	msg, err := messages.Create(ctx, alice, "bye")
	require.NoError(t, err)
	bobMsg, err := messages.Create(ctx, bob, "staying")
	require.NoError(t, err)

	require.NoError(t, social.Follow(ctx, alice, bob.ID))
	require.NoError(t, social.Follow(ctx, bob, alice.ID))
	require.NoError(t, reactions.Like(ctx, alice, bobMsg.ID))
	require.NoError(t, reactions.Like(ctx, bob, msg.ID))

	require.NoError(t, users.Delete(ctx, alice))

	_, err = users.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = messages.Get(ctx, msg.ID)
	assert.ErrorIs(t, err, ErrNotFound, "owned messages are removed")

	var follows, likes int64
	require.NoError(t, db.Model(&domain.Follow{}).Count(&follows).Error)
	require.NoError(t, db.Model(&domain.Like{}).Count(&likes).Error)
	assert.Zero(t, follows, "both directions of follow edges are removed")
	assert.Zero(t, likes, "likes by the user and on the user's messages are removed")

	// Bob's own message survives
	_, err = messages.Get(ctx, bobMsg.ID)
	assert.NoError(t, err)
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	signupUser(t, db, "alice")
	signupUser(t, db, "malice")
	signupUser(t, db, "bob")

	all, err := svc.ListUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alice", all[0].Username, "listing is ordered by username")

	// Case-insensitive substring match
	matched, err := svc.ListUsers(ctx, "ALIC")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "alice", matched[0].Username)
	assert.Equal(t, "malice", matched[1].Username)

	none, err := svc.ListUsers(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}
