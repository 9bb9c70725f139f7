package storage

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidID    = errors.New("invalid object id")
	ErrDuplicateKey = errors.New("duplicate key")
)
