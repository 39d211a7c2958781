package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

const tokenSchema = `
CREATE TABLE IF NOT EXISTS box_tokens (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_key      TEXT,
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL,
	expires_in    INTEGER NOT NULL,
	expires_at    INTEGER NOT NULL,
	created_at    INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_box_tokens_user ON box_tokens (user_key, created_at);
`

// SQLiteStore persists token records in a local SQLite database. Timestamps are
// stored as unix seconds.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database at path and ensures the
// token table exists.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open token database failed: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure token database failed: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, tokenSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create token table failed: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Latest implements Store. The empty user key matches rows stored with NULL or
// empty user_key.
func (s *SQLiteStore) Latest(ctx context.Context, userKey string) (*TokenRecord, error) {
	query := `SELECT id, COALESCE(user_key, ''), access_token, refresh_token,
		expires_in, expires_at, created_at, updated_at
		FROM box_tokens WHERE `
	args := []any{}
	if userKey == "" {
		query += `(user_key IS NULL OR user_key = '')`
	} else {
		query += `user_key = ?`
		args = append(args, userKey)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT 1`

	var rec TokenRecord
	var expiresAt, createdAt, updatedAt int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID, &rec.UserKey, &rec.AccessToken, &rec.RefreshToken,
		&rec.ExpiresIn, &expiresAt, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query token record failed: %w", err)
	}

	rec.ExpiresAt = time.Unix(expiresAt, 0)
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)

	return &rec, nil
}

// Insert implements Store.
func (s *SQLiteStore) Insert(ctx context.Context, rec *TokenRecord) error {
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO box_tokens
			(user_key, access_token, refresh_token, expires_in, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullableKey(rec.UserKey), rec.AccessToken, rec.RefreshToken, rec.ExpiresIn,
		rec.ExpiresAt.Unix(), rec.CreatedAt.Unix(), rec.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert token record failed: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted token id failed: %w", err)
	}

	return nil
}

// Update implements Store.
func (s *SQLiteStore) Update(ctx context.Context, rec *TokenRecord) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE box_tokens
		 SET access_token = ?, refresh_token = ?, expires_in = ?, expires_at = ?, updated_at = ?
		 WHERE id = ?`,
		rec.AccessToken, rec.RefreshToken, rec.ExpiresIn,
		rec.ExpiresAt.Unix(), rec.UpdatedAt.Unix(), rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update token record failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read update row count failed: %w", err)
	}
	if n == 0 {
		return errRecordNotFound
	}

	return nil
}

func nullableKey(userKey string) any {
	if userKey == "" {
		return nil
	}
	return userKey
}
