package api

import (
	"context"                  // Context for Redis operations
	"errors"                   // Sentinel error handling
	"net/http"                 // HTTP status codes
	"parksys/internal/domain"  // Importing domain models
	"parksys/internal/storage" // Cascade, counting and dedup logic
	"parksys/internal/utils"   // Utility functions
	"strconv"                  // String conversion
	"time"                     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// parseID validates a numeric path parameter, writing a 400 on failure
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the :id segment
	if err != nil || id == 0 {
		// Non-numeric or zero id is a client error
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// CreateParkRequest represents a park creation request
type CreateParkRequest struct {
	Name         string `json:"name" binding:"required"` // Park name must be provided
	Municipality string `json:"municipality"`            // Owning municipality
	Address      string `json:"address"`                 // Street address
}

// CreateParkHandler creates a new park (admin only)
func CreateParkHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateParkRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the park row
		park := domain.Park{
			Name:         req.Name,         // Park name
			Municipality: req.Municipality, // Owning municipality
			Address:      req.Address,      // Street address
		}
		if err := db.Create(&park).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"name":  req.Name,    // Park name
				"error": err.Error(), // Error message
			}).Error("Failed to create park") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create park"})
			return
		}
		// Return the created park
		c.JSON(http.StatusCreated, gin.H{"message": "Park created", "park": park})
	}
}

// ListParksHandler returns parks with pagination
func ListParksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page
		pageSize := 20 // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size if valid
			}
		}
		offset := (page - 1) * pageSize // Calculate offset
		var total int64                 // Total park count
		// Count parks for pagination
		if err := db.Model(&domain.Park{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count parks"})
			return
		}
		var parks []domain.Park // Slice to hold parks
		// Fetch paginated parks
		if err := db.Order("name asc").Offset(offset).Limit(pageSize).Find(&parks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parks"})
			return
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		c.JSON(http.StatusOK, gin.H{
			"parks":       parks,      // List of parks
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total parks
			"total_pages": totalPages, // Total pages
		})
	}
}

// GetParkHandler returns a single park by id
func GetParkHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c) // Validate the path id
		if !ok {
			return
		}
		var park domain.Park // Fetch the park
		if err := db.First(&park, id).Error; err != nil {
			// If park not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Park not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"park": park}) // Return park info
	}
}

// GetParkDependenciesHandler reports how many rows a delete would remove.
// The dashboard shows these counts in the confirmation dialog.
func GetParkDependenciesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c) // Validate the path id
		if !ok {
			return
		}
		// Count across every dependent table; a nonexistent id yields zeros
		counts, err := storage.CountParkDependencies(db, id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"park_id": id,          // Park ID
				"error":   err.Error(), // Error message
			}).Error("Failed to count park dependencies") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count dependencies"})
			return
		}
		// Return counts per category plus the total
		c.JSON(http.StatusOK, gin.H{"park_id": id, "dependencies": counts})
	}
}

// DeleteParkHandler removes a park and everything that depends on it (admin
// only). The cascade is all-or-nothing; a failure leaves no partial state
// and is never retried here.
func DeleteParkHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c) // Validate the path id
		if !ok {
			return
		}
		// Run the cascade
		removed, err := storage.DeletePark(db, id)
		if err != nil {
			// Unknown id (or lost a race with another delete)
			if errors.Is(err, storage.ErrParkNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Park not found"})
				return
			}
			// Transaction failed and rolled back
			logrus.WithFields(logrus.Fields{
				"park_id": id,          // Park ID
				"error":   err.Error(), // Error message
			}).Error("Park delete failed") // Log cascade failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Park delete failed"})
			return
		}
		// Audit line for the destructive operation
		logrus.WithFields(logrus.Fields{
			"park_id":   id,                              // Park ID
			"removed":   removed.Total,                   // Rows removed or unlinked
			"type":      "park_cascade_delete",           // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Park deleted") // Log successful cascade
		// Listings cache may now contain stale preferred-park references
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, instructorListKey) // Invalidate instructor listing cache
		// Return the counts that were removed
		c.JSON(http.StatusOK, gin.H{"message": "Park deleted", "removed": removed})
	}
}
