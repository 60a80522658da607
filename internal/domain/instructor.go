package domain

import "time"

// Instructor Model. Rows can predate their User (legacy imports), so user_id
// is nullable and set later by reconciliation. Duplicate (name, email) pairs
// exist in legacy data; nothing in the schema prevents them.
type Instructor struct {
	ID              uint      `gorm:"primaryKey" json:"id"`               // Primary key
	UserID          *uint     `json:"user_id"`                            // Back-reference to the linked user, nullable
	PreferredParkID *uint     `json:"preferred_park_id"`                  // Weak reference to a park, nulled when the park is deleted
	FullName        string    `gorm:"size:150;not null" json:"full_name"` // Denormalized copy of the user's name
	Email           string    `gorm:"size:100" json:"email"`              // Denormalized copy of the user's email
	Phone           string    `gorm:"size:30" json:"phone"`               // Denormalized copy of the user's phone
	AvatarURL       string    `gorm:"size:255" json:"avatar_url"`         // Denormalized copy of the user's avatar
	Specialty       string    `gorm:"size:100" json:"specialty"`          // Teaching specialty
	CreatedAt       time.Time `json:"created_at"`                         // Timestamp of creation, used to pick the dedup representative
}
