package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert loses to a uniqueness
// constraint. Services map it to their conflict sentinel.
var ErrDuplicate = errors.New("duplicate key value")

// isDuplicate recognises a unique-constraint violation across the two
// backends we run on: SQLSTATE 23505 from postgres, the UNIQUE message
// from sqlite, and gorm's own translation when the driver supports it.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := err.Error()
	return strings.Contains(s, "23505") ||
		strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
