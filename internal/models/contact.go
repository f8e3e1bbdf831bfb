// Package models defines the records kept by the landing page server.
package models

import "time"

// ContactRequest is the form the landing page posts to /api/contact. Any
// valid JSON body is accepted; these fields are extracted when present.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// ContactSubmission is a stored contact form message.
type ContactSubmission struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Payload   string    `json:"payload"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
}
