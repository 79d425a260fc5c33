package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/pkg/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	m := NewAuthMiddleware(jwtSvc)

	r := gin.New()
	protected := r.Group("/api")
	protected.Use(m.Authenticate())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(ContextUserID),
			"email":  c.GetString(ContextEmail),
			"role":   c.GetString(ContextRole),
		})
	})

	adminOnly := protected.Group("/admin")
	adminOnly.Use(m.RequireRole(model.RoleAdmin))
	adminOnly.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, jwtSvc
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r, jwtSvc := newAuthRouter(t)
	userID := uuid.New()

	token, err := jwtSvc.GenerateToken(userID, "john@example.com", "PATIENT")
	require.NoError(t, err)

	w := get(r, "/api/me", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "john@example.com")
}

func TestAuthenticateRejects(t *testing.T) {
	r, _ := newAuthRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"malformed", "Bearer"},
		{"bad token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/api/me", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r, jwtSvc := newAuthRouter(t)

	adminToken, err := jwtSvc.GenerateToken(uuid.New(), "admin@medvault.com", "ADMIN")
	require.NoError(t, err)
	patientToken, err := jwtSvc.GenerateToken(uuid.New(), "john@example.com", "PATIENT")
	require.NoError(t, err)

	w := get(r, "/api/admin/ping", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/api/admin/ping", "Bearer "+patientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "permission denied")
}
