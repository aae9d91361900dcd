package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/service"
	"github.com/eduhub-platform/backend/internal/session"
	"github.com/eduhub-platform/backend/pkg/response"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *mockAuthService) LogoutAll(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ service.AuthService = (*mockAuthService)(nil)

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/api/v1/auth/register", h.Register)
	router.POST("/api/v1/auth/login", h.Login)
	router.POST("/api/v1/auth/refresh", h.Refresh)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	svc := new(mockAuthService)
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "VALIDATION_ERROR", env.Error)
	svc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	svc := new(mockAuthService)
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrUserAlreadyExists)
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "CONFLICT", env.Error)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, mock.Anything).Return(&dto.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    900,
		User:         dto.UserResponse{ID: "u1", Email: "alice@example.com", Role: "student"},
	}, nil)
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Contains(t, w.Body.String(), "access")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "AUTHENTICATION_REQUIRED", env.Error)
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Refresh", mock.Anything, "stale").Return(nil, session.ErrAuthenticationRequired)
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "stale"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "AUTHENTICATION_REQUIRED", env.Error)
}
