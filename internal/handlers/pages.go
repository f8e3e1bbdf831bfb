// Package handlers provides the HTTP handlers of the landing page server.
package handlers

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Optional pages and the file each is served from inside the pages directory.
var optionalPages = map[string]string{
	"download":   "download_page.html",
	"onboarding": "client_onboarding.html",
	"support":    "client_support.html",
}

// PageHandler serves the landing page and the optional secondary pages
// verbatim from disk.
type PageHandler struct {
	landingPage string
	pagesDir    string
}

func NewPageHandler(landingPage, pagesDir string) *PageHandler {
	return &PageHandler{
		landingPage: landingPage,
		pagesDir:    pagesDir,
	}
}

// Home serves the landing page.
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	h.serve(c, h.landingPage)
}

// Page returns a handler for one of the optional pages.
// GET /download, /onboarding, /support
func (h *PageHandler) Page(name string) gin.HandlerFunc {
	file, ok := optionalPages[name]
	return func(c *gin.Context) {
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not available"})
			return
		}
		h.serve(c, filepath.Join(h.pagesDir, file))
	}
}

func (h *PageHandler) serve(c *gin.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Failed to read page %s: %v", path, err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "page not available"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
