package store

import "errors"

var (
	// ErrBoardFileNotFound is returned by [BoardFileStore.Load] when path
	// does not exist.
	ErrBoardFileNotFound = errors.New("board file not found")

	// ErrMalformedBoardFile is returned by [BoardFileStore.Load] when the
	// file exists but does not hold a complete envelope.
	ErrMalformedBoardFile = errors.New("malformed board file")
)
