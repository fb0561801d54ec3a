package usecase

import (
	"errors"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
)

// storageErr turns a repository error into the client facing error: missing rows
// become NotFound with msg, everything else is internal.
func storageErr(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return apperror.Internal(err)
}
