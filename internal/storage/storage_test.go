package storage_test

import (
	"testing"

	"parksys/internal/db"
	"parksys/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory SQLite database with the full schema. A single
// connection is forced because every new connection to :memory: would
// otherwise see its own empty database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(db.Models()...))
	return gdb
}

// seedPark creates a park with the dependent rows from the reference
// scenario: 3 trees, 2 activities, 1 incident, and a volunteer pointing at
// it as preferred park. Returns the park and volunteer ids.
func seedPark(t *testing.T, gdb *gorm.DB) (uint, uint) {
	t.Helper()
	park := domain.Park{Name: "Parque Central", Municipality: "Guadalajara"}
	require.NoError(t, gdb.Create(&park).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, gdb.Create(&domain.Tree{ParkID: park.ID, Species: "jacaranda"}).Error)
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, gdb.Create(&domain.Activity{ParkID: park.ID, Title: "yoga"}).Error)
	}
	require.NoError(t, gdb.Create(&domain.Incident{ParkID: park.ID, Description: "broken bench", Status: "open"}).Error)
	vol := domain.Volunteer{FullName: "Rosa Mendez", Email: "rosa@example.com", PreferredParkID: &park.ID}
	require.NoError(t, gdb.Create(&vol).Error)
	return park.ID, vol.ID
}
