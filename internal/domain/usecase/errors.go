package usecase

import "errors"

var (
	// ErrNotFound covers both absent records and records owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a conditional checkpoint update matched nothing:
	// another run advanced or rolled back the payment first.
	ErrConflict = errors.New("checkpoint conflict")
)
