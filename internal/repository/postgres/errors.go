package postgres

import (
	"errors"

	"go-swipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// translate maps driver errors onto the domain sentinels, wrapping so the
// original cause stays inspectable.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Join(domain.ErrConflict, err)
		case pgForeignKeyViolation:
			return errors.Join(domain.ErrReferenceMissing, err)
		case pgInvalidTextRepr:
			// a malformed uuid cannot identify any row
			return domain.ErrNotFound
		}
	}
	return err
}
