package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key"})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "test-signing-key", TokenTTL: time.Minute}
		assert.NoError(t, config.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("negative ttl", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "test-secret", TokenTTL: -time.Second}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL")
	})

	t.Run("defaults are applied", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "test-secret"}

		_, err := NewAuthService(config)
		require.NoError(t, err)
		assert.Equal(t, "planner-backend", config.Issuer)
		assert.Equal(t, time.Hour, config.TokenTTL)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewAuthService(nil)
		assert.Error(t, err)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT("user-1", "jane.doe@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
	assert.Equal(t, "planner-backend", claims.Issuer)
}

func TestGenerateJWTRequiresUser(t *testing.T) {
	service := newTestService(t)

	_, err := service.GenerateJWT("", "jane.doe@example.com")
	assert.Error(t, err)
}

func TestValidateJWTRejects(t *testing.T) {
	service := newTestService(t)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "another-key"})
		require.NoError(t, err)
		token, err := other.GenerateJWT("user-1", "")
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "planner-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", Issuer: "someone-else"})
		require.NoError(t, err)
		token, err := other.GenerateJWT("user-1", "")
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("no expiry", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Issuer: "planner-backend"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("no subject", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "planner-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no subject")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.Use(middleware.RequireAuth())
	router.GET("/whoami", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		claims, hasClaims := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"userId":    userID,
			"ok":        ok,
			"hasClaims": hasClaims && claims.Email != "",
			"ctxUser":   logger.UserFromContext(c.Request.Context()),
		})
	})

	token, err := service.GenerateJWT("user-1", "jane.doe@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantError: "Authorization header is required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantError: "Invalid authorization header format"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantError: "Invalid authorization header format"},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized, wantError: "Invalid token"},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				assert.Equal(t, "authentication_error", body["kind"])
				return
			}
			assert.Equal(t, "user-1", body["userId"])
			assert.Equal(t, true, body["ok"])
			assert.Equal(t, true, body["hasClaims"])
			assert.Equal(t, "user-1", body["ctxUser"])
		})
	}
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set("user_id", 42)
	_, ok = GetUserID(c)
	assert.False(t, ok)

	_, ok = GetAuthClaims(c)
	assert.False(t, ok)
}
