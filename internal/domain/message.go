package domain

import "time"

// MaxMessageLength bounds the text of a single message, in runes.
const MaxMessageLength = 140

// Message Model
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`            // Primary key
	Text      string    `gorm:"size:140;not null" json:"text"`   // Message body
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // Set once at creation, feed sort key
	UserID    uint      `gorm:"not null;index" json:"user_id"`   // Owning user, immutable after creation
}
