package db

import (
	"parksys/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/gorm"            // GORM ORM library
)

// Models lists every table the service owns, in migration order
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Park{},
		&domain.Amenity{},
		&domain.Instructor{},
		&domain.Volunteer{},
		&domain.Tree{},
		&domain.Activity{},
		&domain.Incident{},
		&domain.Asset{},
		&domain.ParkAmenity{},
		&domain.ParkImage{},
		&domain.ParkDocument{},
		&domain.Evaluation{},
		&domain.Maintenance{},
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models()...); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
