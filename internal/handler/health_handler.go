package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduhub-platform/backend/pkg/database"
	"github.com/eduhub-platform/backend/pkg/redis"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *database.PostgresDB
	mongo *database.MongoDB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, mongo *database.MongoDB, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		mongo: mongo,
		redis: redis,
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadyResponse represents readiness check response
type ReadyResponse struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// Health returns a simple health check (liveness probe)
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready returns a readiness check (readiness probe)
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	allHealthy := true

	check := func(name string, fn func(context.Context) error) {
		if fn == nil {
			components[name] = "not configured"
			return
		}
		if err := fn(ctx); err != nil {
			components[name] = "unhealthy: " + err.Error()
			allHealthy = false
		} else {
			components[name] = "healthy"
		}
	}

	if h.db != nil {
		check("database", h.db.HealthCheck)
	} else {
		components["database"] = "not configured"
	}
	if h.mongo != nil {
		check("mongodb", h.mongo.HealthCheck)
	} else {
		components["mongodb"] = "not configured"
	}
	if h.redis != nil {
		check("redis", h.redis.HealthCheck)
	} else {
		components["redis"] = "not configured"
	}

	status := http.StatusOK
	state := "ready"
	if !allHealthy {
		status = http.StatusServiceUnavailable
		state = "not ready"
	}

	c.JSON(status, ReadyResponse{
		Status:     state,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Components: components,
	})
}
