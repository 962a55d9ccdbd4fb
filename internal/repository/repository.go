package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrCacheMiss is returned by the cache repository when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// IsUniqueViolation reports whether err is the Postgres unique-index error.
// The form stores rely on it to surface duplicate enrollment keys as conflicts.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
