package storage

import (
	"errors" // Sentinel error handling

	"parksys/internal/domain" // Importing domain models

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Row locking clause
)

// ErrParkNotFound is returned when a delete targets a park id that does not
// exist (or was deleted by a concurrent request).
var ErrParkNotFound = errors.New("park not found")

// DeletePark atomically removes a park together with every row that exists
// only because of it, and nulls the preferred-park reference on volunteers
// and instructors that merely point at it. The whole cascade runs in one
// transaction: on any failure everything rolls back and the database is left
// exactly as it was. Callers must not retry automatically; deletion is an
// explicit operator action.
//
// Returns the dependency counts that were removed, for the audit trail and
// the HTTP response.
func DeletePark(db *gorm.DB, parkID uint) (DependencyCounts, error) {
	var removed DependencyCounts
	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock the park row for the duration of the cascade so two
		// concurrent deletes cannot both proceed past this point. SQLite
		// (used in tests) rejects FOR UPDATE and serializes writers anyway.
		q := tx.Where("id = ?", parkID)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var park domain.Park
		if err := q.First(&park).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParkNotFound // Nothing to delete
			}
			return err // Return error to rollback
		}
		// Snapshot what is about to be removed, inside the transaction so
		// the numbers match the rows actually deleted
		counts, err := CountParkDependencies(tx, parkID)
		if err != nil {
			return err
		}
		removed = counts
		// Delete strict dependents most-specific first so no statement
		// trips over a foreign key still pointing at rows yet to go
		steps := []any{
			&domain.Maintenance{},
			&domain.Tree{},
			&domain.Evaluation{},
			&domain.ParkDocument{},
			&domain.ParkAmenity{},
			&domain.ParkImage{},
			&domain.Activity{},
			&domain.Incident{},
			&domain.Asset{},
		}
		for _, model := range steps {
			if err := tx.Where("park_id = ?", parkID).Delete(model).Error; err != nil {
				return err // Return error to rollback
			}
		}
		// Weak references are cleared, never deleted: a volunteer outlives
		// their preferred park
		if err := tx.Model(&domain.Volunteer{}).
			Where("preferred_park_id = ?", parkID).
			Update("preferred_park_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Instructor{}).
			Where("preferred_park_id = ?", parkID).
			Update("preferred_park_id", nil).Error; err != nil {
			return err
		}
		// Finally the park row itself
		if err := tx.Delete(&domain.Park{}, parkID).Error; err != nil {
			return err
		}
		return nil // Commit transaction
	})
	if err != nil {
		return DependencyCounts{}, err // No partial state survives a failure
	}
	return removed, nil
}
