package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrNoSecretConfigured indicates the long-term encryption secret is
	// absent from every configuration source. The server must not serve
	// encrypt/decrypt requests in this state.
	ErrNoSecretConfigured = errors.New("no encryption secret configured")
)
