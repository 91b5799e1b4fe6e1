// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

// Package adapter provides transport-layer abstractions for communicating
// with the board vault server.
//
// The primary abstraction is [VaultAdapter], which decouples callers (the
// boardctl CLI, for one) from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPVaultAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/pinatlas/board-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines transport-agnostic communication with the board
// vault server. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package. No key material ever flows through an adapter: it sends
// plaintext documents and receives envelopes, or the reverse.
type VaultAdapter interface {
	// Encrypt submits a board document (and optional protection password)
	// and returns the encrypted envelope produced by the server.
	Encrypt(ctx context.Context, document string, password string) (models.Envelope, error)

	// Decrypt submits an envelope (and optional password) and returns the
	// recovered document exactly as the server rendered it.
	Decrypt(ctx context.Context, envelope models.Envelope, password string) (any, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
