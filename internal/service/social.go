package service

import (
	"context"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialService maintains the directed follow graph as explicit edge-table
// operations. Edge mutations are idempotent: re-following is a no-op and
// unfollowing an absent edge silently succeeds.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// Follow adds the edge actor -> target. The target must exist; following
// yourself is rejected.
func (s *SocialService) Follow(ctx context.Context, actor *domain.User, targetID uint) error {
	if actor == nil {
		return ErrUnauthorized
	}
	if actor.ID == targetID {
		return ErrInvalid
	}
	var target domain.User
	if err := s.db.WithContext(ctx).First(&target, targetID).Error; err != nil {
		return translate(err)
	}
	edge := domain.Follow{FollowerID: actor.ID, FollowedID: target.ID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
	return translate(err)
}

// Unfollow removes the edge actor -> target. Removing an edge that is not
// there is not an error.
func (s *SocialService) Unfollow(ctx context.Context, actor *domain.User, targetID uint) error {
	if actor == nil {
		return ErrUnauthorized
	}
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", actor.ID, targetID).
		Delete(&domain.Follow{}).Error
}

// FollowingOf returns the users that user follows, ordered by username.
func (s *SocialService) FollowingOf(ctx context.Context, user *domain.User) ([]domain.User, error) {
	var users []domain.User
	err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", user.ID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

// FollowersOf returns the users following user, ordered by username.
func (s *SocialService) FollowersOf(ctx context.Context, user *domain.User) ([]domain.User, error) {
	var users []domain.User
	err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", user.ID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

// FollowerIDsOf lists the ids of everyone following user. Used by the HTTP
// layer to invalidate follower feed caches after a message mutation.
func (s *SocialService) FollowerIDsOf(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("followed_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}
