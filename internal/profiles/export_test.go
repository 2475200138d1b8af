package profiles

import (
	"database/sql"
	"errors"
)

// DB exposes the internal *sql.DB for test helpers in profiles_test.
// This file only compiles during `go test`.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// FailCommits makes every following commit roll back and fail.
func (s *SQLiteStore) FailCommits() {
	s.hooks.commit = func(tx *sql.Tx) error {
		_ = tx.Rollback()
		return errors.New("injected commit failure")
	}
}

// HeldLocks reports how many per-user locks are currently allocated.
func (s *MemoryStore) HeldLocks() int {
	return s.keys.size()
}
