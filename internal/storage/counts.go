package storage

import (
	"parksys/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// DependencyCounts reports how many rows in each dependent table reference a
// park. Shown to the operator before a destructive delete and echoed back
// after one. A nonexistent park id simply yields all zeros.
type DependencyCounts struct {
	Maintenances int64 `json:"maintenances"` // Maintenance records
	Trees        int64 `json:"trees"`        // Trees
	Evaluations  int64 `json:"evaluations"`  // Visitor evaluations
	Documents    int64 `json:"documents"`    // Park documents
	Amenities    int64 `json:"amenities"`    // Amenity link rows
	Images       int64 `json:"images"`       // Park images
	Activities   int64 `json:"activities"`   // Activities
	Incidents    int64 `json:"incidents"`    // Incidents
	Assets       int64 `json:"assets"`       // Assets
	Volunteers   int64 `json:"volunteers"`   // Volunteers referencing the park as preferred
	Instructors  int64 `json:"instructors"`  // Instructors referencing the park as preferred
	Total        int64 `json:"total"`        // Sum of all categories
}

// CountParkDependencies counts rows across every dependent table for a park.
// Read-only: no side effects, and two calls without intervening writes
// return identical results.
func CountParkDependencies(db *gorm.DB, parkID uint) (DependencyCounts, error) {
	var c DependencyCounts
	// Strict dependents keyed by park_id, one count per table
	strict := []struct {
		model any    // Table to count
		dest  *int64 // Field receiving the count
	}{
		{&domain.Maintenance{}, &c.Maintenances},
		{&domain.Tree{}, &c.Trees},
		{&domain.Evaluation{}, &c.Evaluations},
		{&domain.ParkDocument{}, &c.Documents},
		{&domain.ParkAmenity{}, &c.Amenities},
		{&domain.ParkImage{}, &c.Images},
		{&domain.Activity{}, &c.Activities},
		{&domain.Incident{}, &c.Incidents},
		{&domain.Asset{}, &c.Assets},
	}
	for _, s := range strict {
		// Count rows referencing the park
		if err := db.Model(s.model).Where("park_id = ?", parkID).Count(s.dest).Error; err != nil {
			return DependencyCounts{}, err // Return zero counts on error
		}
	}
	// Weak referrers keyed by preferred_park_id; these get nulled, not deleted
	if err := db.Model(&domain.Volunteer{}).Where("preferred_park_id = ?", parkID).Count(&c.Volunteers).Error; err != nil {
		return DependencyCounts{}, err
	}
	if err := db.Model(&domain.Instructor{}).Where("preferred_park_id = ?", parkID).Count(&c.Instructors).Error; err != nil {
		return DependencyCounts{}, err
	}
	// Total is the plain sum; each row is counted in exactly one category
	c.Total = c.Maintenances + c.Trees + c.Evaluations + c.Documents + c.Amenities +
		c.Images + c.Activities + c.Incidents + c.Assets + c.Volunteers + c.Instructors
	return c, nil
}
