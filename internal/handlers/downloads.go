package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pandeptwidyaop/landing-kit/internal/artifacts"
	"github.com/pandeptwidyaop/landing-kit/internal/models"
	"github.com/pandeptwidyaop/landing-kit/internal/services"
)

// DownloadHandler streams placeholder packages and reports download counts.
type DownloadHandler struct {
	store  *artifacts.Store
	events *services.EventService
}

// NewDownloadHandler creates a DownloadHandler. events may be nil, in which
// case downloads are not recorded and stats are zero.
func NewDownloadHandler(store *artifacts.Store, events *services.EventService) *DownloadHandler {
	return &DownloadHandler{
		store:  store,
		events: events,
	}
}

// Download returns a handler that serves the named artifact as an attachment.
// GET /download/access-shield-client, /download/access-shield-server
func (h *DownloadHandler) Download(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		artifact, path, err := h.store.Ensure(name)
		if err != nil {
			log.Printf("Error serving %s package: %v", name, err)
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not available"})
			return
		}

		if h.events != nil {
			err := h.events.RecordDownload(models.DownloadEvent{
				Artifact:  name,
				IPAddress: c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
			})
			if err != nil {
				log.Printf("Failed to record download of %s: %v", name, err)
			}
		}

		c.Header("Content-Type", artifact.ContentType)
		c.FileAttachment(path, artifact.Filename)
	}
}

// Stats returns download counters.
// GET /api/download-stats
func (h *DownloadHandler) Stats(c *gin.Context) {
	stats := &models.DownloadStats{ByArtifact: map[string]int{}}
	if h.events != nil {
		s, err := h.events.DownloadStats()
		if err != nil {
			log.Printf("Failed to load download stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to load download statistics",
			})
			return
		}
		stats = s
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_downloads":    stats.Total,
			"client_downloads":   stats.ByArtifact[artifacts.Client],
			"server_downloads":   stats.ByArtifact[artifacts.Server],
			"last_24h_downloads": stats.Last24h,
		},
	})
}
