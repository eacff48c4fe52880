package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("repository: duplicate record")
	// ErrNoRowsAffected is returned when a delete expected to remove a row removed none.
	ErrNoRowsAffected = errors.New("repository: no rows affected")
)

const pgUniqueViolation = "23505"

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	if errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if IsDuplicate(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
