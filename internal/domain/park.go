package domain

import "time"

// Park Model, the root aggregate every dependent table hangs off
type Park struct {
	ID           uint      `gorm:"primaryKey" json:"id"`          // Primary key
	Name         string    `gorm:"size:150;not null" json:"name"` // Park name
	Municipality string    `gorm:"size:100" json:"municipality"`  // Owning municipality
	Address      string    `gorm:"size:255" json:"address"`       // Street address
	CreatedAt    time.Time `json:"created_at"`                    // Timestamp of creation
	UpdatedAt    time.Time `json:"updated_at"`                    // Timestamp of last update
}
