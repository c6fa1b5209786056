package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
)

// SaveCheckin writes a weekly check-in keyed by program week, fully
// replacing any earlier submission for the same week.
func (s *Storage) SaveCheckin(c *models.WeeklyCheckin) error {
	if c.RecordedAt.IsZero() {
		c.RecordedAt = time.Now().UTC()
	}

	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO weekly_checkins
		   (user_id, week, weight, waist, pain_level, notes, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.UserID, c.Week, c.Weight, c.Waist, c.PainLevel, c.Notes,
		c.RecordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save check-in for week %d: %w", c.Week, err)
	}
	return nil
}

// GetCheckin returns the check-in for a program week, or nil when none was
// submitted.
func (s *Storage) GetCheckin(week int) (*models.WeeklyCheckin, error) {
	row := s.DB.QueryRow(
		`SELECT week, weight, waist, pain_level, notes, recorded_at
		 FROM weekly_checkins WHERE user_id = ? AND week = ?`,
		s.UserID, week,
	)

	var c models.WeeklyCheckin
	var recordedAt string
	err := row.Scan(&c.Week, &c.Weight, &c.Waist, &c.PainLevel, &c.Notes, &recordedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load check-in for week %d: %w", week, err)
	}

	c.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	return &c, nil
}

// GetCheckins returns all check-ins ordered by week ascending, regardless
// of submission order.
func (s *Storage) GetCheckins() ([]models.WeeklyCheckin, error) {
	rows, err := s.DB.Query(
		`SELECT week, weight, waist, pain_level, notes, recorded_at
		 FROM weekly_checkins WHERE user_id = ? ORDER BY week ASC`,
		s.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkins []models.WeeklyCheckin
	for rows.Next() {
		var c models.WeeklyCheckin
		var recordedAt string
		if err := rows.Scan(&c.Week, &c.Weight, &c.Waist, &c.PainLevel, &c.Notes, &recordedAt); err != nil {
			continue
		}
		c.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}
