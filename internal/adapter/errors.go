package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	// ErrBadRequest corresponds to 400: the request was structurally
	// rejected before any cryptography ran.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized corresponds to 401: a password was required or
	// wrong. The server deliberately does not say which.
	ErrUnauthorized = errors.New("invalid password")

	// ErrServerFailure corresponds to 500: an opaque encryption or
	// decryption failure.
	ErrServerFailure = errors.New("server failure")
)
