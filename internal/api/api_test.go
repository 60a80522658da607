package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"parksys/internal/api"
	"parksys/internal/db"
	"parksys/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the handlers against an in-memory SQLite database and a
// miniredis instance. Auth middleware is left off; these tests exercise the
// handlers themselves.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *redis.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(db.Models()...))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.POST("/user", api.RegisterHandler(gdb))
	r.GET("/user", api.LoginHandler(gdb, "test-secret"))
	r.POST("/parks", api.CreateParkHandler(gdb))
	r.GET("/parks", api.ListParksHandler(gdb))
	r.GET("/parks/:id", api.GetParkHandler(gdb))
	r.GET("/parks/:id/dependencies", api.GetParkDependenciesHandler(gdb))
	r.DELETE("/parks/:id", api.DeleteParkHandler(gdb, rdb))
	r.GET("/instructors", api.ListInstructorsHandler(gdb, rdb))
	r.GET("/volunteers", api.ListVolunteersHandler(gdb))
	r.POST("/instructors", api.CreateInstructorHandler(gdb, rdb))
	r.POST("/volunteers", api.CreateVolunteerHandler(gdb))
	r.GET("/users/:id/avatar", api.GetAvatarHandler(gdb, rdb))
	r.PUT("/users/:id", api.UpdateUserHandler(gdb, rdb))
	return r, gdb, rdb
}

// doJSON performs a request with a JSON body and decodes the JSON response
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

// mustCreate inserts a row directly, for test fixtures
func mustCreate(t *testing.T, gdb *gorm.DB, value any) {
	t.Helper()
	require.NoError(t, gdb.Create(value).Error)
}

// seedScenarioPark builds the reference scenario: a park with 3 trees,
// 2 activities, 1 incident and a volunteer preferring it
func seedScenarioPark(t *testing.T, gdb *gorm.DB) (uint, uint) {
	t.Helper()
	park := domain.Park{Name: "Parque Agua Azul"}
	mustCreate(t, gdb, &park)
	for i := 0; i < 3; i++ {
		mustCreate(t, gdb, &domain.Tree{ParkID: park.ID, Species: "fresno"})
	}
	for i := 0; i < 2; i++ {
		mustCreate(t, gdb, &domain.Activity{ParkID: park.ID, Title: "tai chi"})
	}
	mustCreate(t, gdb, &domain.Incident{ParkID: park.ID, Description: "graffiti", Status: "open"})
	vol := domain.Volunteer{FullName: "Rosa Mendez", Email: "rosa@example.com", PreferredParkID: &park.ID}
	mustCreate(t, gdb, &vol)
	return park.ID, vol.ID
}
