package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pandeptwidyaop/landing-kit/internal/models"
	"github.com/pandeptwidyaop/landing-kit/internal/services"
	"github.com/pandeptwidyaop/landing-kit/internal/validation"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	events *services.EventService
}

// NewContactHandler creates a ContactHandler. events may be nil, in which
// case submissions are only logged.
func NewContactHandler(events *services.EventService) *ContactHandler {
	return &ContactHandler{events: events}
}

// Submit logs and acknowledges a contact message. Any valid JSON body is
// accepted.
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		log.Printf("Error processing contact form: invalid body from %s", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Failed to process your message",
		})
		return
	}

	log.Printf("Contact form submission: %s", body)

	if h.events != nil {
		var req models.ContactRequest
		// Non-object bodies leave req empty; the raw payload is stored regardless.
		_ = json.Unmarshal(body, &req)
		req = validation.ContactFields(req)
		if _, err := h.events.RecordContact(req, string(body), c.ClientIP(), c.Request.UserAgent()); err != nil {
			log.Printf("Failed to store contact submission: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message. We will get back to you within 24 hours.",
	})
}
