package credential

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/emkr-13/sim-admin/internal/models"
)

// SQLiteStore keeps the session in a single-row sqlite table so it
// survives process restarts.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the credential database at path, creating the file and
// its directory when needed, and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping credential database: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS credentials (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL DEFAULT '',
			user_json TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Get returns the stored session, or nil when none is stored. A row with
// an empty access token counts as logged out.
func (s *SQLiteStore) Get() (*models.Session, error) {
	var sess models.Session
	var userJSON sql.NullString

	err := s.db.QueryRow(`
		SELECT access_token, refresh_token, user_json FROM credentials WHERE id = 1
	`).Scan(&sess.AccessToken, &sess.RefreshToken, &userJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if sess.AccessToken == "" {
		return nil, nil
	}

	if userJSON.Valid && userJSON.String != "" {
		var user models.UserProfile
		if err := json.Unmarshal([]byte(userJSON.String), &user); err == nil {
			sess.User = &user
		}
	}

	return &sess, nil
}

// Set replaces whatever session is stored.
func (s *SQLiteStore) Set(sess *models.Session) error {
	var userJSON any
	if sess.User != nil {
		raw, err := json.Marshal(sess.User)
		if err != nil {
			return err
		}
		userJSON = string(raw)
	}

	_, err := s.db.Exec(`
		INSERT INTO credentials (id, access_token, refresh_token, user_json, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			user_json = excluded.user_json,
			updated_at = excluded.updated_at
	`, sess.AccessToken, sess.RefreshToken, userJSON, time.Now())
	return err
}

// Clear removes the stored session. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM credentials WHERE id = 1")
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
