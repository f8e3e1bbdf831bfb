package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pandeptwidyaop/landing-kit/internal/metrics"
	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

// DockerProbe reports whether a Docker daemon is reachable.
type DockerProbe interface {
	Available(ctx context.Context) bool
}

// HealthHandler reports liveness plus host resource usage.
type HealthHandler struct {
	diskPath string
	docker   DockerProbe
	started  time.Time
}

// NewHealthHandler creates a HealthHandler. docker may be nil to skip the
// daemon probe.
func NewHealthHandler(diskPath string, docker DockerProbe) *HealthHandler {
	return &HealthHandler{
		diskPath: diskPath,
		docker:   docker,
		started:  time.Now(),
	}
}

// Health returns server status.
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := gin.H{
		"status":  "ok",
		"version": version.Version,
		"uptime":  int64(time.Since(h.started).Seconds()),
	}

	if host, err := metrics.Collect(ctx, h.diskPath); err == nil {
		resp["host"] = host
	}
	if h.docker != nil {
		resp["docker"] = gin.H{"available": h.docker.Available(ctx)}
	}

	c.JSON(http.StatusOK, resp)
}
