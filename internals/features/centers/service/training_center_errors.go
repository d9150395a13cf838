package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// InvalidInputError marks a structural precondition failure (nil input or
// missing code) detected before the store is touched.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// DuplicateCenterCodeError is returned when the center code is already taken,
// whether caught by the advisory probe or by the unique index on insert.
type DuplicateCenterCodeError struct {
	CenterCode string
}

func (e *DuplicateCenterCodeError) Error() string {
	return "Center code already exists: " + e.CenterCode
}

// isUniqueViolation detects Postgres unique violations (code "23505") from
// either driver, with a substring fallback for wrapped errors.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
