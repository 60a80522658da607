package storage_test

import (
	"errors"
	"testing"

	"parksys/internal/domain"
	"parksys/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteParkCascade(t *testing.T) {
	gdb := testDB(t)
	parkID, volID := seedPark(t, gdb)
	// A second park proves the cascade only touches its own rows
	other := domain.Park{Name: "Parque Norte"}
	require.NoError(t, gdb.Create(&other).Error)
	require.NoError(t, gdb.Create(&domain.Tree{ParkID: other.ID, Species: "pino"}).Error)
	inst := domain.Instructor{FullName: "Luis Ortega", Email: "luis@example.com", PreferredParkID: &parkID}
	require.NoError(t, gdb.Create(&inst).Error)

	removed, err := storage.DeletePark(gdb, parkID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed.Trees)
	assert.EqualValues(t, 2, removed.Activities)
	assert.EqualValues(t, 1, removed.Incidents)
	assert.EqualValues(t, 1, removed.Volunteers)
	assert.EqualValues(t, 1, removed.Instructors)

	// Every strict dependent category is empty for the deleted park
	for _, model := range []any{
		&domain.Maintenance{}, &domain.Tree{}, &domain.Evaluation{}, &domain.ParkDocument{},
		&domain.ParkAmenity{}, &domain.ParkImage{}, &domain.Activity{}, &domain.Incident{}, &domain.Asset{},
	} {
		var n int64
		require.NoError(t, gdb.Model(model).Where("park_id = ?", parkID).Count(&n).Error)
		assert.Zero(t, n)
	}
	// Weak referrers survive with the reference cleared
	var vol domain.Volunteer
	require.NoError(t, gdb.First(&vol, volID).Error)
	assert.Nil(t, vol.PreferredParkID)
	require.NoError(t, gdb.First(&inst, inst.ID).Error)
	assert.Nil(t, inst.PreferredParkID)
	// The park itself is gone
	err = gdb.First(&domain.Park{}, parkID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	// The unrelated park and its tree are untouched
	var otherTrees int64
	require.NoError(t, gdb.Model(&domain.Tree{}).Where("park_id = ?", other.ID).Count(&otherTrees).Error)
	assert.EqualValues(t, 1, otherTrees)
}

func TestDeleteParkUnknownID(t *testing.T) {
	gdb := testDB(t)

	_, err := storage.DeletePark(gdb, 9999)
	assert.True(t, errors.Is(err, storage.ErrParkNotFound))
}

func TestDeleteParkRollsBackOnFailure(t *testing.T) {
	gdb := testDB(t)
	parkID, volID := seedPark(t, gdb)
	require.NoError(t, gdb.Create(&domain.Evaluation{ParkID: parkID, Score: 5}).Error)
	before, err := storage.CountParkDependencies(gdb, parkID)
	require.NoError(t, err)

	// Force a failure on the third delete statement of the cascade
	require.NoError(t, gdb.Exec(`CREATE TRIGGER block_eval_delete BEFORE DELETE ON evaluations
		BEGIN SELECT RAISE(ABORT, 'forced failure'); END`).Error)

	_, err = storage.DeletePark(gdb, parkID)
	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrParkNotFound))

	// Nothing changed: park present, every count as before
	require.NoError(t, gdb.First(&domain.Park{}, parkID).Error)
	after, err := storage.CountParkDependencies(gdb, parkID)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed cascade must leave no partial state")
	var vol domain.Volunteer
	require.NoError(t, gdb.First(&vol, volID).Error)
	require.NotNil(t, vol.PreferredParkID)
	assert.Equal(t, parkID, *vol.PreferredParkID)
}
