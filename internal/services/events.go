// Package services provides the persistence behind the landing page server.
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/pandeptwidyaop/landing-kit/internal/database"
	"github.com/pandeptwidyaop/landing-kit/internal/models"
)

// timeLayout matches SQLite's CURRENT_TIMESTAMP so stored times sort as text.
const timeLayout = "2006-01-02 15:04:05"

// EventService records contact submissions and downloads.
type EventService struct {
	db  *database.DB
	now func() time.Time
}

// NewEventService creates a new EventService instance.
func NewEventService(db *database.DB) *EventService {
	return &EventService{db: db, now: time.Now}
}

// WithClock replaces the time source.
func (s *EventService) WithClock(now func() time.Time) *EventService {
	s.now = now
	return s
}

// RecordContact stores a contact submission and returns its ID.
func (s *EventService) RecordContact(req models.ContactRequest, payload, ip, userAgent string) (string, error) {
	id := uuid.New().String()

	_, err := s.db.Exec(`
		INSERT INTO contact_submissions (id, name, email, company, message, payload, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, req.Name, req.Email, req.Company, req.Message, payload, ip, userAgent, s.timestamp())
	if err != nil {
		return "", err
	}
	return id, nil
}

// RecentContacts returns the latest submissions, newest first.
func (s *EventService) RecentContacts(limit int) ([]models.ContactSubmission, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, company, message, payload, ip_address, user_agent, created_at
		FROM contact_submissions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []models.ContactSubmission
	for rows.Next() {
		var sub models.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Company, &sub.Message, &sub.Payload, &sub.IPAddress, &sub.UserAgent, &sub.CreatedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}

// RecordDownload stores a download event.
func (s *EventService) RecordDownload(event models.DownloadEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO download_events (artifact, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?)
	`, event.Artifact, event.IPAddress, event.UserAgent, s.timestamp())
	return err
}

// DownloadStats counts downloads overall, per artifact and in the last 24 hours.
func (s *EventService) DownloadStats() (*models.DownloadStats, error) {
	stats := &models.DownloadStats{ByArtifact: make(map[string]int)}

	rows, err := s.db.Query(`SELECT artifact, COUNT(*) FROM download_events GROUP BY artifact`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var artifact string
		var count int
		if err := rows.Scan(&artifact, &count); err != nil {
			return nil, err
		}
		stats.ByArtifact[artifact] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	since := s.now().UTC().Add(-24 * time.Hour).Format(timeLayout)
	err = s.db.QueryRow(`SELECT COUNT(*) FROM download_events WHERE created_at >= ?`, since).Scan(&stats.Last24h)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *EventService) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}
