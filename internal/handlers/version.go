package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pandeptwidyaop/landing-kit/internal/upgrade"
	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

type VersionHandler struct {
	checker *upgrade.Checker
}

func NewVersionHandler(checker *upgrade.Checker) *VersionHandler {
	return &VersionHandler{checker: checker}
}

// Get returns build information.
// GET /api/version
func (h *VersionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, version.Info())
}

// CheckUpdate checks if a new version is available
// GET /api/version/check
func (h *VersionHandler) CheckUpdate(c *gin.Context) {
	status, err := h.checker.Check(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"current":          status.Current,
			"latest":           "",
			"update_available": false,
			"error":            err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, status)
}
