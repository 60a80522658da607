package api

import (
	"context"                  // Context for Redis operations
	"net/http"                 // HTTP status codes
	"parksys/internal/domain"  // Importing domain models
	"parksys/internal/storage" // Identity reconciliation
	"parksys/internal/utils"   // Utility functions
	"strconv"                  // String conversion
	"strings"                  // String manipulation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// UpdateUserRequest is a partial profile update; nil fields are untouched
type UpdateUserRequest struct {
	FullName  *string `json:"full_name"`  // New display name
	Email     *string `json:"email"`      // New email
	Phone     *string `json:"phone"`      // New contact phone
	AvatarURL *string `json:"avatar_url"` // New profile image URL
	Role      *string `json:"role"`       // New role
}

// validRole checks the role against the known set
func validRole(role string) bool {
	switch role {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleInstructor, domain.RoleVolunteer:
		return true
	}
	return false
}

// UpdateUserHandler updates a user's profile fields and role. When the
// resulting role is instructor or voluntario, the identity reconciler runs
// as a side effect so the user ends up linked to exactly one profile row.
func UpdateUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c) // Validate the path id
		if !ok {
			return
		}
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the role before touching anything
		if req.Role != nil && !validRole(*req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		var user domain.User // Fetch the user
		if err := db.First(&user, id).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Apply provided fields only
		if req.FullName != nil {
			user.FullName = *req.FullName // New display name
		}
		if req.Email != nil {
			user.Email = strings.ToLower(*req.Email) // New email, lowercased
		}
		if req.Phone != nil {
			user.Phone = *req.Phone // New contact phone
		}
		if req.AvatarURL != nil {
			user.AvatarURL = *req.AvatarURL // New profile image URL
		}
		if req.Role != nil {
			user.Role = *req.Role // New role
		}
		// Save the user row
		if err := db.Save(&user).Error; err != nil {
			// Duplicate email collides with the unique index
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		// Reconcile the domain profile when the role calls for one
		if err := storage.ReconcileProfile(db, &user); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"role":    user.Role,   // User role
				"error":   err.Error(), // Error message
			}).Error("Profile reconciliation failed") // Log reconciliation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile reconciliation failed"})
			return
		}
		// Invalidate caches touched by the update
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, avatarKeyPrefix+strconv.Itoa(int(user.ID))) // Avatar may have changed
		_ = utils.DeleteCache(ctx, rdb, instructorListKey)                          // Listing may now include this user
		// Return the updated user
		c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
	}
}
