package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
)

// GetDailyLog returns the log for an ISO date key ("2006-01-02"), or nil
// when nothing was logged for that day.
func (s *Storage) GetDailyLog(date string) (*models.DailyLog, error) {
	row := s.DB.QueryRow(
		`SELECT date, calories, protein, pain_level, sleep_hours,
		        sets_completed, completed_exercises, weights, updated_at
		 FROM daily_logs WHERE user_id = ? AND date = ?`,
		s.UserID, date,
	)

	var dl models.DailyLog
	var calories, protein, sleep sql.NullFloat64
	var pain sql.NullInt64
	var setsJSON, completedJSON, weightsJSON, updatedAt string

	err := row.Scan(&dl.Date, &calories, &protein, &pain, &sleep,
		&setsJSON, &completedJSON, &weightsJSON, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load daily log %s: %w", date, err)
	}

	if calories.Valid {
		dl.Calories = &calories.Float64
	}
	if protein.Valid {
		dl.ProteinGrams = &protein.Float64
	}
	if pain.Valid {
		v := int(pain.Int64)
		dl.PainLevel = &v
	}
	if sleep.Valid {
		dl.SleepHours = &sleep.Float64
	}

	if err := json.Unmarshal([]byte(setsJSON), &dl.SetsCompleted); err != nil {
		return nil, fmt.Errorf("failed to decode set completion for %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(completedJSON), &dl.CompletedExercises); err != nil {
		return nil, fmt.Errorf("failed to decode completed exercises for %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(weightsJSON), &dl.Weights); err != nil {
		return nil, fmt.Errorf("failed to decode weights for %s: %w", date, err)
	}

	dl.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &dl, nil
}

// GetOrCreateDailyLog loads a day's log, handing back a fresh empty one
// when nothing is stored yet. Logs are created lazily; the fresh value is
// not persisted until the first SaveDailyLog.
func (s *Storage) GetOrCreateDailyLog(date string) (*models.DailyLog, error) {
	dl, err := s.GetDailyLog(date)
	if err != nil {
		return nil, err
	}
	if dl == nil {
		dl = &models.DailyLog{Date: date}
	}
	return dl, nil
}

// SaveDailyLog merge-writes a log: scalar fields that are nil in memory
// never clobber values already stored, so partial updates preserve the rest
// of the document.
func (s *Storage) SaveDailyLog(dl *models.DailyLog) error {
	sets := dl.SetsCompleted
	if sets == nil {
		sets = map[int][]bool{}
	}
	completed := dl.CompletedExercises
	if completed == nil {
		completed = []int{}
	}
	weights := dl.Weights
	if weights == nil {
		weights = map[int]string{}
	}

	setsJSON, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("failed to encode set completion: %w", err)
	}
	completedJSON, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("failed to encode completed exercises: %w", err)
	}
	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}

	if dl.UpdatedAt.IsZero() {
		dl.UpdatedAt = time.Now().UTC()
	}

	_, err = s.DB.Exec(
		`INSERT INTO daily_logs
		   (user_id, date, calories, protein, pain_level, sleep_hours,
		    sets_completed, completed_exercises, weights, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   calories = COALESCE(excluded.calories, daily_logs.calories),
		   protein = COALESCE(excluded.protein, daily_logs.protein),
		   pain_level = COALESCE(excluded.pain_level, daily_logs.pain_level),
		   sleep_hours = COALESCE(excluded.sleep_hours, daily_logs.sleep_hours),
		   sets_completed = excluded.sets_completed,
		   completed_exercises = excluded.completed_exercises,
		   weights = excluded.weights,
		   updated_at = excluded.updated_at`,
		s.UserID, dl.Date,
		nullableFloat(dl.Calories), nullableFloat(dl.ProteinGrams),
		nullableInt(dl.PainLevel), nullableFloat(dl.SleepHours),
		string(setsJSON), string(completedJSON), string(weightsJSON),
		dl.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save daily log %s: %w", dl.Date, err)
	}
	return nil
}

// ListDailyLogs returns every stored log ordered by date ascending.
func (s *Storage) ListDailyLogs() ([]models.DailyLog, error) {
	rows, err := s.DB.Query(
		`SELECT date FROM daily_logs WHERE user_id = ? ORDER BY date ASC`,
		s.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var logs []models.DailyLog
	for _, d := range dates {
		dl, err := s.GetDailyLog(d)
		if err != nil || dl == nil {
			continue
		}
		logs = append(logs, *dl)
	}
	return logs, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
