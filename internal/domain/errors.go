package domain

import "errors"

// Storage-level sentinels. Repositories translate driver errors into these so the
// usecases never inspect driver types.
var (
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is a unique constraint violation, e.g. a concurrent insert won the race.
	ErrConflict = errors.New("unique constraint violation")
	// ErrReferenceMissing is a foreign key violation: the referenced row is gone.
	ErrReferenceMissing = errors.New("referenced row does not exist")
)
