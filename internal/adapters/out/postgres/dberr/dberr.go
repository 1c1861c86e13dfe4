// Package dberr maps driver errors onto the errs vocabulary so the core never
// sees a driver type.
package dberr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports a primary key or unique index collision. SQLite
// only reports it as gorm.ErrDuplicatedKey when TranslateError is enabled.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Translate turns a unique violation into *errs.ObjectExistsError and leaves
// any other error untouched.
func Translate(err error, paramName string, id any) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewObjectExistsErrorWithCause(paramName, id, err)
	}
	return err
}

// NotFound turns gorm.ErrRecordNotFound into *errs.ObjectNotFoundError.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}
