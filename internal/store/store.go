package store

import "errors"

var (
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the underlying storage could not be reached or
	// a transaction failed. Writes are fail-atomic, so the caller may
	// simply retry the same operation.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrUnknownQuestion means an outcome was recorded against a question
	// id that is not in the bank. Correct use of the session controller
	// never produces this.
	ErrUnknownQuestion = errors.New("unknown question")
)
