package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// DBFile is the database file name inside the data directory.
const DBFile = "beauty.db"

// SQLiteStore implements Store on a single SQLite database in WAL mode.
// Profiles and palettes are stored as JSON documents next to the columns
// used for ordering and lookup.
type SQLiteStore struct {
	db    *sql.DB
	keys  *keyLock
	hooks storeHooks
}

type storeHooks struct {
	beginTx func(ctx context.Context, db *sql.DB) (*sql.Tx, error)
	commit  func(tx *sql.Tx) error
}

func (s *SQLiteStore) beginTxHook(ctx context.Context) (*sql.Tx, error) {
	if s.hooks.beginTx != nil {
		return s.hooks.beginTx(ctx, s.db)
	}
	return s.db.BeginTx(ctx, nil)
}

func (s *SQLiteStore) commitHook(tx *sql.Tx) error {
	if s.hooks.commit != nil {
		return s.hooks.commit(tx)
	}
	return tx.Commit()
}

// NewSQLiteStore creates the data directory if needed, opens SQLite with
// WAL mode, and runs migrations.
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("profiles: create data dir: %w", err)
	}

	db, err := openDB("sqlite", filepath.Join(dataDir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("profiles: open database: %w", err)
	}
	// One connection: writers queue in Go instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("profiles: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db, keys: newKeyLock()}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("profiles: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			seq        INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT    NOT NULL UNIQUE,
			season     TEXT    NOT NULL,
			data       TEXT    NOT NULL,
			created_at TEXT    NOT NULL,
			updated_at TEXT    NOT NULL
		);

		CREATE TABLE IF NOT EXISTS palettes (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id      TEXT    NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
			palette_id   TEXT    NOT NULL,
			palette_type TEXT    NOT NULL,
			data         TEXT    NOT NULL,
			created_at   TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_palettes_user ON palettes(user_id, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (s *SQLiteStore) Put(ctx context.Context, p *colorimetry.Profile) error {
	if err := ValidateUserID(p.UserID); err != nil {
		return err
	}
	unlock := s.keys.Lock(p.UserID)
	defer unlock()

	tx, err := s.beginTxHook(ctx)
	if err != nil {
		return fmt.Errorf("profiles: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var raw string
	err = tx.QueryRowContext(ctx, `SELECT data FROM profiles WHERE user_id = ?`, p.UserID).Scan(&raw)
	switch {
	case err == nil:
		var existing colorimetry.Profile
		if err := json.Unmarshal([]byte(raw), &existing); err != nil {
			return fmt.Errorf("profiles: parse profile %q: %w", p.UserID, err)
		}
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("profiles: load profile: %w", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profiles: marshal profile: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, season, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		     season     = excluded.season,
		     data       = excluded.data,
		     updated_at = excluded.updated_at`,
		p.UserID, string(p.Season), string(data), formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("profiles: put profile: %w", err)
	}
	if err := s.commitHook(tx); err != nil {
		return fmt.Errorf("profiles: commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, userID string) (*colorimetry.Profile, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM profiles WHERE user_id = ?`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, colorimetry.ProfileNotFound(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("profiles: get profile: %w", err)
	}
	var p colorimetry.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("profiles: parse profile %q: %w", userID, err)
	}
	return &p, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]colorimetry.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM profiles ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("profiles: list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []colorimetry.Profile{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var p colorimetry.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("profiles: parse profile: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, userID string) error {
	unlock := s.keys.Lock(userID)
	defer unlock()

	tx, err := s.beginTxHook(ctx)
	if err != nil {
		return fmt.Errorf("profiles: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM palettes WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("profiles: delete history: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("profiles: delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profiles: delete profile: %w", err)
	}
	if n == 0 {
		return colorimetry.ProfileNotFound(userID)
	}
	if err := s.commitHook(tx); err != nil {
		return fmt.Errorf("profiles: commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AppendPalette(ctx context.Context, userID string, p *colorimetry.Palette) error {
	unlock := s.keys.Lock(userID)
	defer unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profiles: marshal palette: %w", err)
	}

	tx, err := s.beginTxHook(ctx)
	if err != nil {
		return fmt.Errorf("profiles: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := profileExists(ctx, tx, userID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO palettes (user_id, palette_id, palette_type, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, p.ID, string(p.Type), string(data), formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("profiles: append palette: %w", err)
	}
	if err := s.commitHook(tx); err != nil {
		return fmt.Errorf("profiles: commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) History(ctx context.Context, userID string) ([]colorimetry.Palette, error) {
	if err := profileExists(ctx, s.db, userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT data FROM palettes WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("profiles: history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []colorimetry.Palette{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var p colorimetry.Palette
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("profiles: parse palette: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

type rowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func profileExists(ctx context.Context, q rowQueryer, userID string) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM profiles WHERE user_id = ?`, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return colorimetry.ProfileNotFound(userID)
	}
	if err != nil {
		return fmt.Errorf("profiles: lookup profile: %w", err)
	}
	return nil
}
