package domain

import "time"

// Rows whose lifecycle is strictly bound to a park. Every model here carries
// a park_id foreign key and is removed by the cascade when the park goes.

// Tree Model
type Tree struct {
	ID        uint   `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID    uint   `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Species   string `gorm:"size:100" json:"species"`       // Tree species
	Condition string `gorm:"size:50" json:"condition"`      // Health condition
}

// Activity Model
type Activity struct {
	ID       uint      `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID   uint      `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Title    string    `gorm:"size:150" json:"title"`         // Activity title
	StartsAt time.Time `json:"starts_at"`                     // Scheduled start
}

// Incident Model
type Incident struct {
	ID          uint   `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID      uint   `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Description string `gorm:"size:255" json:"description"`   // What happened
	Status      string `gorm:"size:30" json:"status"`         // open, resolved
}

// Asset Model
type Asset struct {
	ID     uint   `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID uint   `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Name   string `gorm:"size:150" json:"name"`          // Asset name
	Serial string `gorm:"size:100" json:"serial"`        // Serial number
}

// Amenity Model, catalog table referenced by park_amenities link rows.
// Not part of the cascade; only the links are.
type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`          // Primary key
	Name string `gorm:"size:100;not null" json:"name"` // Amenity name
}

// ParkAmenity Model, link row between a park and a catalog amenity
type ParkAmenity struct {
	ID        uint `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID    uint `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	AmenityID uint `gorm:"not null" json:"amenity_id"`    // Foreign key to Amenity
}

// ParkImage Model
type ParkImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`            // Primary key
	ParkID    uint   `gorm:"index;not null" json:"park_id"`   // Foreign key to Park
	URL       string `gorm:"size:255" json:"url"`             // Image URL
	IsPrimary bool   `gorm:"default:false" json:"is_primary"` // Whether this is the cover image
}

// ParkDocument Model
type ParkDocument struct {
	ID     uint   `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID uint   `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Title  string `gorm:"size:150" json:"title"`         // Document title
	URL    string `gorm:"size:255" json:"url"`           // Document URL
}

// Evaluation Model
type Evaluation struct {
	ID     uint `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID uint `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Score  int  `json:"score"`                         // 1-5 visitor score
}

// Maintenance Model
type Maintenance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`          // Primary key
	ParkID      uint      `gorm:"index;not null" json:"park_id"` // Foreign key to Park
	Description string    `gorm:"size:255" json:"description"`   // Work performed
	PerformedAt time.Time `json:"performed_at"`                  // When the work happened
}
