package postgres

import (
	"errors"
	"hotel/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err carries a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeUniqueViolation)
}

// IsForeignKeyViolation reports whether err carries a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeFkViolation)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return string(pqErr.Code) == code
}
