package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/middleware"
	"github.com/eduhub-platform/backend/internal/query"
	"github.com/eduhub-platform/backend/internal/service"
	"github.com/eduhub-platform/backend/pkg/logger"
	"github.com/eduhub-platform/backend/pkg/response"
)

// PostHandler handles blog post HTTP requests
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List returns a page of published posts
// GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query())

	posts, total, err := h.postService.List(c.Request.Context(), q)
	if err != nil {
		logger.Get().Error("list posts failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Paginated(posts, "", q.Page, q.Limit, total))
}

// GetBySlug returns one post
// GET /api/v1/posts/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.postService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(response.NotFound("Post not found"))
			return
		}
		logger.Get().Error("get post failed", zap.Error(err), zap.String("slug", slug))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(post, ""))
}

// Create stores a new post
// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(response.Unauthorized("Authentication required"))
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(response.BadRequest(msg))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), identity.ID, &req)
	if err != nil {
		if errors.Is(err, service.ErrPostAlreadyExists) {
			c.JSON(response.Conflict("A post with this slug already exists"))
			return
		}
		logger.Get().Error("create post failed", zap.Error(err))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(post, "Post created"))
}

// Update applies a partial update to a post
// PUT /api/v1/posts/:slug
func (h *PostHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(response.BadRequest(msg))
		return
	}

	post, err := h.postService.Update(c.Request.Context(), slug, &req)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(response.NotFound("Post not found"))
			return
		}
		logger.Get().Error("update post failed", zap.Error(err), zap.String("slug", slug))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(post, "Post updated"))
}

// Delete removes a post
// DELETE /api/v1/posts/:slug
func (h *PostHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.postService.Delete(c.Request.Context(), slug); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(response.NotFound("Post not found"))
			return
		}
		logger.Get().Error("delete post failed", zap.Error(err), zap.String("slug", slug))
		c.JSON(response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.Success(nil, "Post deleted"))
}
