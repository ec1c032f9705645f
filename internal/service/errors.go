package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Failure kinds handlers translate to HTTP statuses. Services wrap these with
// a caller-facing message via fmt.Errorf("...: %w", ErrX).
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream error")
)

const pgUniqueViolation = "23505"

// isDuplicateKey reports whether err is a unique-constraint violation, either
// through gorm's error translation or a raw Postgres 23505.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
