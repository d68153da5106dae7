package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeFeedScopeAndOrder(t *testing.T) {
	db := newTestDB(t)
	social := NewSocialService(db)
	feed := NewFeedService(db)
	ctx := context.Background()

	alice := signupUser(t, db, "alice")
	bob := signupUser(t, db, "bob")
	carol := signupUser(t, db, "carol")
	dave := signupUser(t, db, "dave") // Stranger, not followed

	require.NoError(t, social.Follow(ctx, alice, bob.ID))
	require.NoError(t, social.Follow(ctx, alice, carol.ID))

	base := time.Now()
	msg1 := postMessageAt(t, db, bob, "msg1", base.Add(1*time.Minute))
	msg2 := postMessageAt(t, db, alice, "msg2", base.Add(2*time.Minute))
	postMessageAt(t, db, dave, "msg3", base.Add(3*time.Minute))

	msgs, err := feed.HomeFeed(ctx, alice)
	require.NoError(t, err)
	require.Len(t, msgs, 2, "stranger's message is excluded")
	assert.Equal(t, msg2.ID, msgs[0].ID, "newest first")
	assert.Equal(t, msg1.ID, msgs[1].ID)
}

func TestHomeFeedExcludesUnfollowed(t *testing.T) {
	db := newTestDB(t)
	social := NewSocialService(db)
	feed := NewFeedService(db)
	ctx := context.Background()

	alice := signupUser(t, db, "alice")
	bob := signupUser(t, db, "bob")
	postMessageAt(t, db, bob, "hello", time.Now())

	require.NoError(t, social.Follow(ctx, alice, bob.ID))
	msgs, err := feed.HomeFeed(ctx, alice)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	require.NoError(t, social.Unfollow(ctx, alice, bob.ID))
	msgs, err = feed.HomeFeed(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestHomeFeedTruncatesToLimit(t *testing.T) {
	db := newTestDB(t)
	feed := NewFeedService(db)
	ctx := context.Background()
	alice := signupUser(t, db, "alice")

	base := time.Now()
	for i := 0; i < HomeFeedLimit+5; i++ {
		postMessageAt(t, db, alice, fmt.Sprintf("msg %d", i), base.Add(time.Duration(i)*time.Second))
	}

	msgs, err := feed.HomeFeed(ctx, alice)
	require.NoError(t, err)
	require.Len(t, msgs, HomeFeedLimit)
	assert.Equal(t, fmt.Sprintf("msg %d", HomeFeedLimit+4), msgs[0].Text, "the oldest messages fall off")
}

func TestHomeFeedAnonymous(t *testing.T) {
	db := newTestDB(t)
	feed := NewFeedService(db)

	msgs, err := feed.HomeFeed(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, msgs)
}
