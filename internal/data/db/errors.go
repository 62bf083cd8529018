package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes for the constraint violations this schema can
// produce. The schema itself raises nothing; these surface at write time.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
)

// IsUniqueViolation reports whether err is a unique constraint violation
// (duplicate email, google_id, profile user_id, or progress pair).
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key violation
// (a row referencing a nonexistent parent).
func IsForeignKeyViolation(err error) bool {
	return hasSQLState(err, codeForeignKeyViolation)
}

// IsNotNullViolation reports whether err is a not-null violation (a required
// column with no default was omitted).
func IsNotNullViolation(err error) bool {
	return hasSQLState(err, codeNotNullViolation)
}

func hasSQLState(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == code
	}
	return false
}
