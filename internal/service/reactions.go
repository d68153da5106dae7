package service

import (
	"context"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionService maintains like edges between users and messages. Same edge
// semantics as SocialService: re-liking is a no-op, unliking an absent edge
// silently succeeds.
type ReactionService struct {
	db *gorm.DB
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{db: db}
}

// Like adds the edge actor -> message. The message must exist.
func (s *ReactionService) Like(ctx context.Context, actor *domain.User, messageID uint) error {
	if actor == nil {
		return ErrUnauthorized
	}
	var msg domain.Message
	if err := s.db.WithContext(ctx).First(&msg, messageID).Error; err != nil {
		return translate(err)
	}
	edge := domain.Like{UserID: actor.ID, MessageID: msg.ID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
	return translate(err)
}

// Unlike removes the edge actor -> message.
func (s *ReactionService) Unlike(ctx context.Context, actor *domain.User, messageID uint) error {
	if actor == nil {
		return ErrUnauthorized
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", actor.ID, messageID).
		Delete(&domain.Like{}).Error
}

// LikedMessagesOf returns the messages user has liked, newest first.
func (s *ReactionService) LikedMessagesOf(ctx context.Context, user *domain.User) ([]domain.Message, error) {
	var msgs []domain.Message
	err := s.db.WithContext(ctx).
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", user.ID).
		Order("messages.created_at DESC").
		Find(&msgs).Error
	return msgs, err
}
