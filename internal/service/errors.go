// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package service

import "errors"

// Sentinel errors of the board crypto service. The HTTP layer maps them to
// status codes with [errors.Is]; everything not listed here collapses to a
// generic internal failure.
var (
	// ErrEmptyDocument is returned by Encrypt when no document text was
	// provided. Structural, recoverable by the caller.
	ErrEmptyDocument = errors.New("no board document provided")

	// ErrInvalidEnvelope is returned by Decrypt when the envelope is
	// missing a field or a field is not decodable. Detected before any
	// cryptographic work.
	ErrInvalidEnvelope = errors.New("invalid encrypted envelope")

	// ErrEncryptionFailed wraps every internal failure of the encrypt
	// path. Opaque on purpose: the detailed cause is only logged.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed wraps every AEAD or key-derivation failure of
	// the decrypt path. A wrong secret and tampered data are deliberately
	// indistinguishable through this error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPasswordRequired is returned when the decrypted document is
	// password-protected and no password was supplied.
	ErrPasswordRequired = errors.New("password required")

	// ErrInvalidPassword is returned when the supplied password does not
	// match the hash stored inside the decrypted document.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrSecretNotConfigured is a startup configuration error: the service
	// refuses to be constructed without an encryption secret.
	ErrSecretNotConfigured = errors.New("encryption secret is not configured")

	// ErrVersionIsNotSpecified is a startup configuration error of the
	// app info service.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
