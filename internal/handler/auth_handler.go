package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/middleware"
	"github.com/eduhub-platform/backend/internal/service"
	"github.com/eduhub-platform/backend/internal/session"
	"github.com/eduhub-platform/backend/pkg/logger"
	"github.com/eduhub-platform/backend/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles account registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.ValidateEmail(); !valid {
		c.JSON(response.BadRequest(msg))
		return
	}
	if valid, msg := req.ValidatePassword(); !valid {
		c.JSON(response.BadRequest(msg))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(response.Conflict("An account with this email already exists"))
			return
		}
		logger.Get().Error("register failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(result, "Account created"))
}

// Login handles account login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(response.Unauthorized("Invalid email or password"))
			return
		}
		if errors.Is(err, service.ErrUserInactive) {
			c.JSON(response.Forbidden("Account is inactive"))
			return
		}
		logger.Get().Error("login failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(result, "Logged in"))
}

// Refresh handles token refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAuthenticationRequired):
			c.JSON(response.Unauthorized("Invalid or expired refresh token"))
		case errors.Is(err, session.ErrNotFound):
			c.JSON(response.NotFound("Account no longer exists"))
		case errors.Is(err, session.ErrUserInactive):
			c.JSON(response.Forbidden("Account is inactive"))
		default:
			logger.Get().Error("refresh failed", zap.Error(err))
			c.JSON(response.InternalError())
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result, "Token refreshed"))
}

// Logout invalidates the presented refresh token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		logger.Get().Error("logout failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(nil, "Logged out"))
}

// LogoutAll invalidates every refresh token of the caller
// POST /api/v1/auth/logout-all
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(response.Unauthorized("Authentication required"))
		return
	}

	if err := h.authService.LogoutAll(c.Request.Context(), identity.ID); err != nil {
		logger.Get().Error("logout-all failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(nil, "All sessions logged out"))
}

// Me returns the caller's account
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(response.Unauthorized("Authentication required"))
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(response.NotFound("Account not found"))
			return
		}
		logger.Get().Error("get account failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, ""))
}

// UpdateMe updates the caller's profile
// PUT /api/v1/auth/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(response.Unauthorized("Authentication required"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(response.BadRequest(msg))
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), identity.ID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(response.NotFound("Account not found"))
			return
		}
		logger.Get().Error("update profile failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, "Profile updated"))
}
