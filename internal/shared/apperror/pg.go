package apperror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation melaporkan apakah err adalah pelanggaran unique constraint
// Postgres untuk constraint tertentu. constraintName kosong berarti constraint apapun.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return constraintName == "" || pgErr.ConstraintName == constraintName
	}

	// Fallback: GORM kadang membungkus error driver jadi string biasa
	errMsg := strings.ToLower(err.Error())
	if !strings.Contains(errMsg, "duplicate key value") {
		return false
	}
	return constraintName == "" || strings.Contains(errMsg, strings.ToLower(constraintName))
}
