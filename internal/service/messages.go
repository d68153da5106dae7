package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/RAINBOBOBO/Warbler/internal/auth"
	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"gorm.io/gorm"
)

// MessageService implements message creation, lookup and owner-only deletion.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// Create posts a message owned by the actor. Text must be non-empty and at
// most domain.MaxMessageLength runes; the timestamp is set at creation and
// never changes.
func (s *MessageService) Create(ctx context.Context, actor *domain.User, text string) (*domain.Message, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return nil, ErrInvalid
	}
	msg := &domain.Message{Text: text, UserID: actor.ID}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, translate(err)
	}
	return msg, nil
}

// Get fetches a message by id.
func (s *MessageService) Get(ctx context.Context, id uint) (*domain.Message, error) {
	var msg domain.Message
	if err := s.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, translate(err)
	}
	return &msg, nil
}

// Delete removes a message and its likes. Only the owner may delete:
// authentication and ownership are checked as composed predicates, so a
// non-owner gets ErrUnauthorized and the message stays intact.
func (s *MessageService) Delete(ctx context.Context, actor *domain.User, messageID uint) error {
	var msg domain.Message
	if err := s.db.WithContext(ctx).First(&msg, messageID).Error; err != nil {
		return translate(err)
	}
	if _, err := auth.Check(actor, auth.IsAuthenticated, auth.IsOwner(msg.UserID)); err != nil {
		return ErrUnauthorized
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", msg.ID).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Message{}, msg.ID).Error
	})
}
