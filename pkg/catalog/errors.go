package catalog

import "errors"

var (
	ErrEmptyName      = errors.New("catalog: table name cannot be empty")
	ErrEmptyNamespace = errors.New("catalog: namespace cannot be empty")
	ErrDuplicateTable = errors.New("catalog: duplicate table name")
	ErrUnknownTable   = errors.New("catalog: unknown table")
	ErrInvalidFile    = errors.New("catalog: invalid localization file")
	ErrNilStore       = errors.New("catalog: store cannot be nil")

	ErrInvalidRedisURL  = errors.New("catalog: invalid redis URL")
	ErrRedisUnavailable = errors.New("catalog: redis unavailable")

	// ErrNotFound is returned by a Store when it has no result for a key.
	ErrNotFound = errors.New("catalog: result not found")
)
