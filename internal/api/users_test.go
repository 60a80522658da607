package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"parksys/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserTriggersReconciliation(t *testing.T) {
	r, gdb, _ := setupRouter(t)
	user := domain.User{Username: "ana", Password: "x", Role: domain.RoleUser,
		FullName: "Ana Diaz", Email: "a@x.com"}
	mustCreate(t, gdb, &user)

	// Two saves in a row with role instructor must leave exactly one profile
	for i := 0; i < 2; i++ {
		code, _ := doJSON(t, r, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), map[string]any{
			"role": domain.RoleInstructor, "phone": fmt.Sprintf("555000%d", i),
		})
		require.Equal(t, http.StatusOK, code)
	}

	var n int64
	require.NoError(t, gdb.Model(&domain.Instructor{}).Where("user_id = ?", user.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	var prof domain.Instructor
	require.NoError(t, gdb.Where("user_id = ?", user.ID).First(&prof).Error)
	assert.Equal(t, "5550001", prof.Phone, "latest save synced onto the profile")
}

func TestUpdateUserVolunteerRole(t *testing.T) {
	r, gdb, _ := setupRouter(t)
	user := domain.User{Username: "beto", Password: "x", Email: "beto@example.com"}
	mustCreate(t, gdb, &user)

	code, _ := doJSON(t, r, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), map[string]any{
		"role": domain.RoleVolunteer, "full_name": "Beto Ruiz",
	})
	require.Equal(t, http.StatusOK, code)

	var n int64
	require.NoError(t, gdb.Model(&domain.Volunteer{}).Where("user_id = ?", user.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUpdateUserErrors(t *testing.T) {
	r, gdb, _ := setupRouter(t)
	mustCreate(t, gdb, &domain.User{Username: "ana", Password: "x", Email: "a@x.com"})

	code, _ := doJSON(t, r, http.MethodPut, "/users/9999", map[string]any{"phone": "1"})
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = doJSON(t, r, http.MethodPut, "/users/abc", map[string]any{"phone": "1"})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = doJSON(t, r, http.MethodPut, "/users/1", map[string]any{"role": "czar"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAvatarCacheReadThrough(t *testing.T) {
	r, gdb, _ := setupRouter(t)
	user := domain.User{Username: "ana", Password: "x", Email: "a@x.com",
		AvatarURL: "https://img.example.com/ana.png"}
	mustCreate(t, gdb, &user)
	path := fmt.Sprintf("/users/%d/avatar", user.ID)

	code, body := doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["cached"])
	assert.Equal(t, "https://img.example.com/ana.png", body["avatar_url"])

	// Second read comes from Redis
	code, body = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["cached"])

	// Updating the profile invalidates the cached entry
	code, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), map[string]any{
		"avatar_url": "https://img.example.com/ana2.png",
	})
	require.Equal(t, http.StatusOK, code)
	code, body = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["cached"])
	assert.Equal(t, "https://img.example.com/ana2.png", body["avatar_url"])
}

func TestAvatarUnknownUser(t *testing.T) {
	r, _, _ := setupRouter(t)

	code, _ := doJSON(t, r, http.MethodGet, "/users/9999/avatar", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
