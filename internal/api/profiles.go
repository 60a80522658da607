package api

import (
	"context"                  // Context for Redis operations
	"net/http"                 // HTTP status codes
	"parksys/internal/domain"  // Importing domain models
	"parksys/internal/storage" // Dedup and listing logic
	"parksys/internal/utils"   // Utility functions
	"strconv"                  // String conversion
	"time"                     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// Cache keys and TTLs for the profile surface
const (
	instructorListKey = "instructors:all" // Deduplicated instructor listing
	instructorListTTL = 60 * time.Second  // Listing cache lifetime
	avatarKeyPrefix   = "avatar:user:"    // Per-user avatar cache prefix
	avatarTTL         = 10 * time.Minute  // Avatar cache lifetime; TTL is the eviction policy
)

// ListInstructorsHandler returns the deduplicated instructor listing.
// Duplicate legacy rows sharing a lowercased (name, email) pair are hidden,
// keeping the most recently created row of each pair.
func ListInstructorsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Instructor
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, instructorListKey, &cached)
		if err == nil && found {
			// Return cached listing
			c.JSON(http.StatusOK, gin.H{"instructors": cached, "cached": true})
			return
		}
		// Fetch and dedup from the database
		instructors, err := storage.ListInstructorsDeduped(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch instructors"})
			return
		}
		// Cache the deduplicated listing
		_ = utils.SetCache(ctx, rdb, instructorListKey, instructors, instructorListTTL)
		c.JSON(http.StatusOK, gin.H{"instructors": instructors, "cached": false})
	}
}

// ListVolunteersHandler returns all volunteers
func ListVolunteersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		volunteers, err := storage.ListVolunteers(db) // Fetch volunteers, newest first
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
	}
}

// CreateInstructorRequest represents an instructor created directly (legacy
// imports and manual capture), before any user account exists for them
type CreateInstructorRequest struct {
	FullName        string `json:"full_name" binding:"required"` // Name must be provided
	Email           string `json:"email"`                        // Contact email
	Phone           string `json:"phone"`                        // Contact phone
	Specialty       string `json:"specialty"`                    // Teaching specialty
	PreferredParkID *uint  `json:"preferred_park_id"`            // Optional preferred park
}

// CreateInstructorHandler creates an instructor profile row (admin only)
func CreateInstructorHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateInstructorRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the profile row; no user link yet
		instructor := domain.Instructor{
			FullName:        req.FullName,        // Display name
			Email:           req.Email,           // Contact email
			Phone:           req.Phone,           // Contact phone
			Specialty:       req.Specialty,       // Teaching specialty
			PreferredParkID: req.PreferredParkID, // Optional preferred park
		}
		if err := db.Create(&instructor).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"full_name": req.FullName, // Instructor name
				"error":     err.Error(),  // Error message
			}).Error("Failed to create instructor") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create instructor"})
			return
		}
		// Listing cache is now stale
		_ = utils.DeleteCache(context.Background(), rdb, instructorListKey)
		c.JSON(http.StatusCreated, gin.H{"message": "Instructor created", "instructor": instructor})
	}
}

// CreateVolunteerRequest represents a volunteer created directly
type CreateVolunteerRequest struct {
	FullName        string `json:"full_name" binding:"required"` // Name must be provided
	Email           string `json:"email"`                        // Contact email
	Phone           string `json:"phone"`                        // Contact phone
	PreferredParkID *uint  `json:"preferred_park_id"`            // Optional preferred park
}

// CreateVolunteerHandler creates a volunteer profile row (admin only)
func CreateVolunteerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateVolunteerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the profile row; no user link yet
		volunteer := domain.Volunteer{
			FullName:        req.FullName,        // Display name
			Email:           req.Email,           // Contact email
			Phone:           req.Phone,           // Contact phone
			PreferredParkID: req.PreferredParkID, // Optional preferred park
		}
		if err := db.Create(&volunteer).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"full_name": req.FullName, // Volunteer name
				"error":     err.Error(),  // Error message
			}).Error("Failed to create volunteer") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create volunteer"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Volunteer created", "volunteer": volunteer})
	}
}

// GetAvatarHandler returns a user's avatar URL through the Redis cache.
// Replaces the old unbounded in-process image cache; entries expire on TTL
// and are invalidated on profile update.
func GetAvatarHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c) // Validate the path id
		if !ok {
			return
		}
		ctx := context.Background()                             // Context for Redis operations
		cacheKey := avatarKeyPrefix + strconv.Itoa(int(id))     // Cache key for the avatar
		var avatarURL string                                    // Cached avatar URL
		found, err := utils.GetCache(ctx, rdb, cacheKey, &avatarURL) // Try to get from cache
		if err == nil && found {
			// Return cached avatar
			c.JSON(http.StatusOK, gin.H{"avatar_url": avatarURL, "cached": true})
			return
		}
		// If not in cache, fetch from DB
		var user domain.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, user.AvatarURL, avatarTTL)       // Cache the avatar
		c.JSON(http.StatusOK, gin.H{"avatar_url": user.AvatarURL, "cached": false}) // Return avatar info
	}
}
