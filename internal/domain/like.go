package domain

import "time"

// Like Model: user has marked message as liked. Composite primary key, same
// set semantics as Follow.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`    // Reacting user
	MessageID uint      `gorm:"primaryKey;autoIncrement:false" json:"message_id"` // Liked message
	CreatedAt time.Time `json:"created_at"`                                       // Edge creation time
}
