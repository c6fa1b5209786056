package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/misterclayt0n/reset/internal/config"
)

// Storage is the accessor for the hosted document store. Every document is
// scoped under the anonymous user ID.
type Storage struct {
	DB     *sql.DB
	UserID string
}

func NewStorage() (*Storage, error) {
	// A .env file is optional; the URL may also come from the real
	// environment or from config.toml.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" || os.Getenv("DEV_MODE") == "true" {
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		return nil, fmt.Errorf("no database configured: set TURSO_DATABASE_URL or database.connection_string in config.toml")
	}

	userID, err := config.EnsureUserID()
	if err != nil {
		return nil, fmt.Errorf("Failed to resolve user identity: %w", err)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", url, err)
	}

	if err := InitializeDB(db); err != nil {
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db, UserID: userID}, nil
}

// NewStorageWithDB wraps an already-open database handle. Used by local
// setups and tests that bring their own driver.
func NewStorageWithDB(db *sql.DB, userID string) (*Storage, error) {
	if err := InitializeDB(db); err != nil {
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}
	return &Storage{DB: db, UserID: userID}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS profiles (
            user_id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            start_date TEXT NOT NULL,
            start_weight REAL,
            goals TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS daily_logs (
            user_id TEXT NOT NULL,
            date TEXT NOT NULL,
            calories REAL,
            protein REAL,
            pain_level INTEGER,
            sleep_hours REAL,
            sets_completed TEXT NOT NULL DEFAULT '{}',
            completed_exercises TEXT NOT NULL DEFAULT '[]',
            weights TEXT NOT NULL DEFAULT '{}',
            updated_at TEXT NOT NULL,
            PRIMARY KEY (user_id, date)
        );

        CREATE TABLE IF NOT EXISTS weekly_checkins (
            user_id TEXT NOT NULL,
            week INTEGER NOT NULL,
            weight REAL NOT NULL,
            waist REAL,
            pain_level INTEGER,
            notes TEXT,
            recorded_at TEXT NOT NULL,
            PRIMARY KEY (user_id, week)
        );
    `)
	return err
}
