package service

import (
	"context"
	"strings"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserService implements signup, authentication, profile maintenance and
// user listing.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileUpdate carries the mutable profile fields plus the current password,
// which must re-authenticate before anything is committed.
type ProfileUpdate struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Password       string
}

// Signup creates a new account. The password is bcrypt-hashed before it is
// persisted; the insert runs in one transaction so a duplicate username or
// email leaves no partial row behind.
func (s *UserService) Signup(ctx context.Context, username, password, email, imageURL string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalid
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		imageURL = domain.DefaultImageURL
	}
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		ImageURL:     imageURL,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// Authenticate looks up the user by username and verifies the password hash.
// An unknown username and a wrong password are indistinguishable: both return
// (nil, nil). Never logs or echoes the raw password.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.ToLower(username)).First(&user).Error
	if err != nil {
		if translated := translate(err); translated == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return &user, nil
}

// UpdateProfile re-authenticates the actor with the submitted password, then
// commits the field changes in one transaction. Wrong password denies the
// update; a username or email collision surfaces as ErrDuplicateKey.
func (s *UserService) UpdateProfile(ctx context.Context, actor *domain.User, upd ProfileUpdate) (*domain.User, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	username := strings.ToLower(strings.TrimSpace(upd.Username))
	email := strings.ToLower(strings.TrimSpace(upd.Email))
	if username == "" || email == "" {
		return nil, ErrInvalid
	}
	confirmed, err := s.Authenticate(ctx, actor.Username, upd.Password)
	if err != nil {
		return nil, err
	}
	if confirmed == nil || confirmed.ID != actor.ID {
		return nil, ErrUnauthorized
	}
	if upd.ImageURL == "" {
		upd.ImageURL = domain.DefaultImageURL
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&domain.User{}).Where("id = ?", actor.ID).Updates(map[string]any{
			"username":         username,
			"email":            email,
			"image_url":        upd.ImageURL,
			"header_image_url": upd.HeaderImageURL,
			"bio":              upd.Bio,
		}).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return s.Get(ctx, actor.ID)
}

// Delete removes the actor's account with all owned state in one transaction:
// likes on the actor's messages, the actor's own likes, follow edges in both
// directions, owned messages, then the user row.
func (s *UserService) Delete(ctx context.Context, actor *domain.User) error {
	if actor == nil {
		return ErrUnauthorized
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&domain.Message{}).Select("id").Where("user_id = ?", actor.ID)
		if err := tx.Where("message_id IN (?)", owned).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", actor.ID).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", actor.ID, actor.ID).Delete(&domain.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", actor.ID).Delete(&domain.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, actor.ID).Error
	})
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListUsers returns all users ordered by username, or a case-insensitive
// substring match on username when query is non-empty. No pagination.
func (s *UserService) ListUsers(ctx context.Context, query string) ([]domain.User, error) {
	q := s.db.WithContext(ctx).Order("username")
	if query != "" {
		q = q.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var users []domain.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
