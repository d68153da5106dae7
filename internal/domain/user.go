package domain

// DefaultImageURL is used for accounts created without a profile image.
const DefaultImageURL = "/static/images/default-pic.png"

// User Model
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username       string `gorm:"unique;not null" json:"username"` // Unique username
	Email          string `gorm:"unique;not null" json:"email"`    // Unique email address
	PasswordHash   string `gorm:"not null" json:"-"`               // Hashed password, never serialized
	ImageURL       string `json:"image_url"`                       // Profile image
	HeaderImageURL string `json:"header_image_url"`                // Profile header image
	Bio            string `json:"bio"`                             // Short self-description
}
