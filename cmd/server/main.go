package main

import (
	"context"                      // context package is needed for Redis operations
	"log"                          // log package is needed for logging
	"parksys/internal/api"         // Custom package for API handlers
	"parksys/internal/config"      // Custom package for configuration
	"parksys/internal/middleware"  // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/postgres"      // PostgreSQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Authenticated routes (protected by JWT)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.GET("/parks", api.ListParksHandler(db))                               // Park listing endpoint
	authGroup.GET("/parks/:id", api.GetParkHandler(db))                             // Single park endpoint
	authGroup.GET("/parks/:id/dependencies", api.GetParkDependenciesHandler(db))    // Pre-delete dependency counts
	authGroup.GET("/instructors", api.ListInstructorsHandler(db, redisClient))      // Deduplicated instructor listing
	authGroup.GET("/volunteers", api.ListVolunteersHandler(db))                     // Volunteer listing
	authGroup.GET("/users/:id/avatar", api.GetAvatarHandler(db, redisClient))       // Cached avatar lookup
	authGroup.PUT("/users/:id", api.UpdateUserHandler(db, redisClient))             // Profile update, triggers reconciliation

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.POST("/parks", api.CreateParkHandler(db))                            // Park creation endpoint
	adminGroup.DELETE("/parks/:id", api.DeleteParkHandler(db, redisClient))         // Cascade delete endpoint
	adminGroup.POST("/instructors", api.CreateInstructorHandler(db, redisClient))   // Direct instructor creation
	adminGroup.POST("/volunteers", api.CreateVolunteerHandler(db))                  // Direct volunteer creation

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
