package repository

import "errors"

// Uniqueness and existence invariants surface as these sentinels so the
// application layer can match them with errors.Is regardless of the
// backing store.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateTitle = errors.New("post title already taken")
)
