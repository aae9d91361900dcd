package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/query"
	"github.com/eduhub-platform/backend/internal/service"
	"github.com/eduhub-platform/backend/pkg/logger"
	"github.com/eduhub-platform/backend/pkg/response"
	"github.com/eduhub-platform/backend/pkg/telemetry"
)

// UserHandler handles administrative user management HTTP requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles retrieving all accounts with pagination
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.user.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	q := query.Parse(c.Request.URL.Query())

	span.SetAttributes(
		attribute.Int("page", q.Page),
		attribute.Int("limit", q.Limit),
	)

	users, total, err := h.userService.List(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Get().Error("list users failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	span.SetAttributes(attribute.Int64("total_count", total))
	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Paginated(users, "", q.Page, q.Limit, total))
}

// UpdateRole handles changing an account's role
// PUT /api/v1/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.user.update_role")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id := c.Param("id")
	if id == "" {
		span.SetStatus(codes.Error, "user_id required")
		c.JSON(response.BadRequest("User ID is required"))
		return
	}

	span.SetAttributes(attribute.String("user_id", id))

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request body")
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		span.SetStatus(codes.Error, "validation error")
		c.JSON(response.BadRequest(msg))
		return
	}

	result, err := h.userService.UpdateRole(ctx, id, &req)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrUserNotFound) {
			span.SetStatus(codes.Error, "user not found")
			c.JSON(response.NotFound("User not found"))
			return
		}
		span.SetStatus(codes.Error, err.Error())
		logger.Get().Error("update role failed", zap.Error(err), zap.String("user_id", id))
		c.JSON(response.InternalError())
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(result, "Role updated"))
}
