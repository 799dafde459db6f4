package repo

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned on unique-constraint conflicts.
var ErrAlreadyExists = errors.New("already exists")
