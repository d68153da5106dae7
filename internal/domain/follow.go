package domain

import "time"

// Follow Model: directed edge, follower receives followed user's messages in feed.
// The composite primary key makes duplicate edges structurally impossible.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"` // Following user
	FollowedID uint      `gorm:"primaryKey;autoIncrement:false" json:"followed_id"` // Followed user
	CreatedAt  time.Time `json:"created_at"`                                        // Edge creation time
}
