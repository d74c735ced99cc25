package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"planner-backend/internal/audit"
	"planner-backend/internal/auth"
	"planner-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testSecret = "routes-test-secret"

// newRouter builds the full router over a gorm handle that never connects;
// requests that reach the database are not exercised here.
func newRouter(t *testing.T, metricsEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable"}),
		&gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
		SyncTimeoutSec: 5,
		MetricsEnabled: metricsEnabled,
	}
	dispatcher := audit.NewDispatcher(nil, 0)
	t.Cleanup(dispatcher.Close)

	router, err := SetupRoutes(db, cfg, dispatcher)
	require.NoError(t, err)
	return router
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newRouter(t, false)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/p-1"},
		{http.MethodDelete, "/api/v1/projects/p-1"},
		{http.MethodPost, "/api/v1/projects/p-1/members"},
		{http.MethodPost, "/api/v1/projects/p-1/delta"},
		{http.MethodGet, "/api/v1/projects/p-1/hierarchy/check"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestMalformedDeltaIsRejectedBeforeTheStore(t *testing.T) {
	router := newRouter(t, false)
	authService, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	token, err := authService.GenerateJWT("user-1", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/delta", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNoRoute(t *testing.T) {
	router := newRouter(t, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}

func TestMetricsRoute(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	newRouter(t, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
