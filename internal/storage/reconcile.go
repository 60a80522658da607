package storage

import (
	"errors" // Sentinel error handling

	"parksys/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ReconcileProfile ensures a user whose role calls for a domain profile
// (instructor or voluntario) ends up linked to exactly one profile row.
// Match order: by user_id, else by case-insensitive email, else create.
// Whichever row matches gets the user's denormalized fields synced onto it.
//
// Legacy data contains duplicate emails; every lookup orders by id so the
// lowest-id row always wins, making repeated runs converge on the same row.
// The whole routine runs in one transaction so two concurrent saves of the
// same user cannot both fall through to create.
func ReconcileProfile(db *gorm.DB, u *domain.User) error {
	if !u.ProfileRole() {
		return nil // Other roles carry no domain profile
	}
	return db.Transaction(func(tx *gorm.DB) error {
		switch u.Role {
		case domain.RoleInstructor:
			return reconcileInstructor(tx, u)
		case domain.RoleVolunteer:
			return reconcileVolunteer(tx, u)
		}
		return nil
	})
}

// profileFields is the denormalized copy kept in sync on the profile row
func profileFields(u *domain.User) map[string]any {
	return map[string]any{
		"full_name":  u.FullName,  // Display name
		"email":      u.Email,     // Email
		"phone":      u.Phone,     // Contact phone
		"avatar_url": u.AvatarURL, // Profile image URL
	}
}

// reconcileInstructor links or creates the instructor row for a user
func reconcileInstructor(tx *gorm.DB, u *domain.User) error {
	var prof domain.Instructor
	// Already linked: just refresh the denormalized fields
	err := tx.Where("user_id = ?", u.ID).Order("id asc").First(&prof).Error
	if err == nil {
		return tx.Model(&prof).Updates(profileFields(u)).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	// Unlinked legacy row with the same email: adopt it
	err = tx.Where("user_id IS NULL AND lower(email) = lower(?)", u.Email).Order("id asc").First(&prof).Error
	if err == nil {
		fields := profileFields(u)
		fields["user_id"] = u.ID // Link the row to the user
		return tx.Model(&prof).Updates(fields).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	// No match anywhere: create a fresh profile
	prof = domain.Instructor{
		UserID:    &u.ID,       // Linked from birth
		FullName:  u.FullName,  // Display name
		Email:     u.Email,     // Email
		Phone:     u.Phone,     // Contact phone
		AvatarURL: u.AvatarURL, // Profile image URL
	}
	return tx.Create(&prof).Error
}

// reconcileVolunteer links or creates the volunteer row for a user
func reconcileVolunteer(tx *gorm.DB, u *domain.User) error {
	var prof domain.Volunteer
	err := tx.Where("user_id = ?", u.ID).Order("id asc").First(&prof).Error
	if err == nil {
		return tx.Model(&prof).Updates(profileFields(u)).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	err = tx.Where("user_id IS NULL AND lower(email) = lower(?)", u.Email).Order("id asc").First(&prof).Error
	if err == nil {
		fields := profileFields(u)
		fields["user_id"] = u.ID
		return tx.Model(&prof).Updates(fields).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	prof = domain.Volunteer{
		UserID:    &u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
	}
	return tx.Create(&prof).Error
}
