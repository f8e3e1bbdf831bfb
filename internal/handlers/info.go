package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PackageInfo describes a downloadable package on the info endpoints.
type PackageInfo struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Size         string            `json:"size"`
	Platform     string            `json:"platform"`
	Requirements map[string]string `json:"requirements"`
	Features     []string          `json:"features"`
	LastUpdated  string            `json:"last_updated"`
}

// InfoHandler serves the client and server package descriptions.
type InfoHandler struct {
	version string
	now     func() time.Time
}

func NewInfoHandler(version string) *InfoHandler {
	return &InfoHandler{version: version, now: time.Now}
}

// ClientInfo returns the client package description.
// GET /api/client-info
func (h *InfoHandler) ClientInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"client_package": PackageInfo{
			Name:     "Access Shield Client",
			Version:  h.version,
			Size:     "45.2 MB",
			Platform: "Windows 10/11, macOS, Linux",
			Requirements: map[string]string{
				"os":      "Windows 10+, macOS 10.15+, Ubuntu 18.04+",
				"ram":     "4 GB minimum, 8 GB recommended",
				"storage": "500 MB free space",
				"network": "Internet connection required",
			},
			Features: []string{
				"GitHub organization access governance",
				"Real-time security monitoring",
				"Policy compliance checking",
				"AI-powered threat detection",
				"Multi-channel notifications",
				"Audit logging and reporting",
				"Client feedback system",
				"Framework update management",
			},
			LastUpdated: h.timestamp(),
		},
	})
}

// ServerInfo returns the server package description.
// GET /api/server-info
func (h *InfoHandler) ServerInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"server_package": PackageInfo{
			Name:     "Access Shield Server",
			Version:  h.version,
			Size:     "125.8 MB",
			Platform: "Docker, Kubernetes, Cloud",
			Requirements: map[string]string{
				"os":       "Linux (Ubuntu 20.04+ recommended)",
				"ram":      "8 GB minimum, 16 GB recommended",
				"storage":  "10 GB free space",
				"network":  "Internet connection required",
				"database": "PostgreSQL 12+",
			},
			Features: []string{
				"Centralized access governance",
				"Multi-tenant support",
				"REST API and webhooks",
				"Advanced analytics and reporting",
				"Enterprise-grade security",
				"Scalable architecture",
				"Cloud deployment ready",
				"High availability support",
			},
			LastUpdated: h.timestamp(),
		},
	})
}

func (h *InfoHandler) timestamp() string {
	return h.now().Format(time.RFC3339Nano)
}
