package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
)

// CreateProfile stores the onboarding profile. The profile is written once
// and read every session; there is no update path.
func (s *Storage) CreateProfile(p *models.UserProfile) error {
	_, err := s.DB.Exec(
		`INSERT INTO profiles (user_id, name, start_date, start_weight, goals, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.UserID, p.Name, p.StartDate, p.StartWeight, p.Goals,
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil when the user has not run
// setup yet.
func (s *Storage) GetProfile() (*models.UserProfile, error) {
	row := s.DB.QueryRow(
		`SELECT name, start_date, start_weight, goals, created_at
		 FROM profiles WHERE user_id = ?`,
		s.UserID,
	)

	var p models.UserProfile
	var createdAt string
	err := row.Scan(&p.Name, &p.StartDate, &p.StartWeight, &p.Goals, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}
