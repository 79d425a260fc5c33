package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvault/booking-api/internal/model"
	"github.com/medvault/booking-api/internal/validation"
	apperrors "github.com/medvault/booking-api/pkg/errors"
)

type fakeAuthService struct {
	registerErr error
	loginErr    error

	gotRegister *model.RegisterRequest
	gotEmail    string
	gotPassword string
}

func (f *fakeAuthService) Register(_ context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.gotRegister = req
	return &model.AuthResponse{
		Token: "token",
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}, nil
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (*model.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.gotEmail = email
	f.gotPassword = password
	return &model.AuthResponse{Token: "token", Email: email}, nil
}

func newTestRouter(t *testing.T, svc *fakeAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidators())
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	svc := &fakeAuthService{}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/auth/register", `{
		"name": "John Doe",
		"email": "john@example.com",
		"password": "Secret@123",
		"role": "PATIENT",
		"dob": "1990-04-12",
		"bloodGroup": "O+"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.gotRegister)
	assert.Equal(t, model.RolePatient, svc.gotRegister.Role)
	assert.Equal(t, "1990-04-12", svc.gotRegister.DateOfBirth)
	assert.Equal(t, "O+", svc.gotRegister.BloodGroup)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Token string `json:"token"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "token", resp.Data.Token)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","password":"Secret@123","role":"PATIENT"}`},
		{"bad email", `{"name":"x","email":"nope","password":"Secret@123","role":"PATIENT"}`},
		{"short password", `{"name":"x","email":"a@b.com","password":"short","role":"PATIENT"}`},
		{"unknown role", `{"name":"x","email":"a@b.com","password":"Secret@123","role":"NURSE"}`},
		{"bad blood group", `{"name":"x","email":"a@b.com","password":"Secret@123","role":"PATIENT","bloodGroup":"Z+"}`},
		{"bad dob", `{"name":"x","email":"a@b.com","password":"Secret@123","role":"PATIENT","dob":"12/04/1990"}`},
		{"negative experience", `{"name":"x","email":"a@b.com","password":"Secret@123","role":"DOCTOR","experience":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{}
			r := newTestRouter(t, svc)

			w := postJSON(r, "/api/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, svc.gotRegister, "service must not be reached")
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &fakeAuthService{registerErr: apperrors.Conflict("email already registered", nil)}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/auth/register", `{
		"name": "John Doe",
		"email": "john@example.com",
		"password": "Secret@123",
		"role": "PATIENT"
	}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestLogin(t *testing.T) {
	svc := &fakeAuthService{}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/auth/login", `{"email":"john@example.com","password":"Secret@123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "john@example.com", svc.gotEmail)
	assert.Equal(t, "Secret@123", svc.gotPassword)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := &fakeAuthService{loginErr: apperrors.Unauthorized("invalid credentials", nil)}
	r := newTestRouter(t, svc)

	w := postJSON(r, "/api/auth/login", `{"email":"john@example.com","password":"wrong-password"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}
