package storage

import (
	"database/sql"
	"fmt"
)

func (s *Storage) ProfileExists() (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = ?)",
		s.UserID,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}

	return exists, nil
}
