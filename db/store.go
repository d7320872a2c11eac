// Package db owns all access to the PostgreSQL backend. Every
// operation takes the Store handle explicitly; there is no package
// level pool. Reads and writes rely on single statement atomicity, so
// concurrent updates to the same row resolve as last write wins.
package db

import (
	"errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ErrNotFound reports that the requested id does not exist. It is an
// expected outcome, not a storage fault, and callers are expected to
// branch on it with errors.Is.
var ErrNotFound = errors.New("not found")

// Store is the storage handle. It is constructed once at process start
// and passed to every handler.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() {
	s.pool.Close()
}
