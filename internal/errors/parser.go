package errors

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry   = 1062
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	mysqlForeignKeyAbsent = 1452
	mysqlForeignKeyInUse  = 1451
)

// ParseDBError maps a storage-layer error to an APIError. Record-not-found
// becomes NOT_FOUND, unique-constraint violations become DUPLICATE_RESOURCE,
// everything else is a generic DATABASE_ERROR. The raw error is never
// surfaced to the caller; callers are expected to log it server-side.
func ParseDBError(err error) *APIError {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResourceNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return ErrDuplicateResource
		case mysqlForeignKeyAbsent, mysqlForeignKeyInUse:
			return NewAPIError(ErrBadRequest, "Operation violates a data relation")
		}
		return ErrDatabase
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateResource
		case pgForeignKeyViolation:
			return NewAPIError(ErrBadRequest, "Operation violates a data relation")
		}
		return ErrDatabase
	}

	// SQLite reports constraint violations as plain error strings.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed: unique") {
		return ErrDuplicateResource
	}

	return ErrDatabase
}
