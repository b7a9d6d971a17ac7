package storage

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique key (lot_number, id_number) is already taken.
	ErrDuplicate = errors.New("duplicate entry")
)
