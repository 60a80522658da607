package storage

import (
	"strings" // Case folding for the dedup key

	"parksys/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ListInstructorsDeduped returns instructors with duplicate rows hidden:
// rows sharing the same lowercased (full_name, email) pair collapse to one
// representative, the most recently created. This is presentation-only; the
// duplicate rows stay in the table untouched.
func ListInstructorsDeduped(db *gorm.DB) ([]domain.Instructor, error) {
	var rows []domain.Instructor
	// Newest first, id as tie-break, so the first row seen per key is the
	// representative to keep
	if err := db.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows)) // Keys already represented
	out := make([]domain.Instructor, 0, len(rows))
	for _, r := range rows {
		key := strings.ToLower(r.FullName) + "\x00" + strings.ToLower(r.Email)
		if _, dup := seen[key]; dup {
			continue // Older duplicate, hide it
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// ListVolunteers returns all volunteers, newest first
func ListVolunteers(db *gorm.DB) ([]domain.Volunteer, error) {
	var rows []domain.Volunteer
	if err := db.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
