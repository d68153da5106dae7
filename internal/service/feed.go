package service

import (
	"context"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"gorm.io/gorm"
)

// HomeFeedLimit caps the feed at the most recent messages.
const HomeFeedLimit = 100

// FeedService computes the home feed: messages from the actor and everyone
// the actor follows.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// HomeFeed returns the most recent messages owned by the actor or by any
// followed user, ordered by timestamp descending, at most HomeFeedLimit.
// One range query with a membership subquery on the follow table; no
// per-user fan-out.
func (s *FeedService) HomeFeed(ctx context.Context, actor *domain.User) ([]domain.Message, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	following := s.db.Model(&domain.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", actor.ID)
	var msgs []domain.Message
	err := s.db.WithContext(ctx).
		Where("user_id = ? OR user_id IN (?)", actor.ID, following).
		Order("created_at DESC").
		Limit(HomeFeedLimit).
		Find(&msgs).Error
	return msgs, err
}
