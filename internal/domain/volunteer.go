package domain

import "time"

// Volunteer Model. Same lifecycle as Instructor: independently createable,
// reconciled against a User later.
type Volunteer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`               // Primary key
	UserID          *uint     `json:"user_id"`                            // Back-reference to the linked user, nullable
	PreferredParkID *uint     `json:"preferred_park_id"`                  // Weak reference to a park, nulled when the park is deleted
	FullName        string    `gorm:"size:150;not null" json:"full_name"` // Denormalized copy of the user's name
	Email           string    `gorm:"size:100" json:"email"`              // Denormalized copy of the user's email
	Phone           string    `gorm:"size:30" json:"phone"`               // Denormalized copy of the user's phone
	AvatarURL       string    `gorm:"size:255" json:"avatar_url"`         // Denormalized copy of the user's avatar
	CreatedAt       time.Time `json:"created_at"`                         // Timestamp of creation
}
