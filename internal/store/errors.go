package store

import "errors"

var (
	ErrNotFound = errors.New("appointment not found")
	ErrConflict = errors.New("slot already booked")
)
