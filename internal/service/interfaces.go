package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/pinatlas/board-vault/models"
)

// BoardCryptoService performs the two stateless operations of the board
// vault: sealing a plaintext board document into an encrypted envelope and
// recovering the document from one. Both operations are pure functions of
// their inputs plus fresh randomness; nothing is shared between calls, so
// they are safe to run fully in parallel.
type BoardCryptoService interface {
	// Encrypt seals document into a fresh envelope. When password is
	// non-empty the document is first wrapped with the password gate, so
	// the resulting envelope can only be opened back into the document by
	// presenting the same password.
	//
	// Returns [ErrEmptyDocument] for an empty document and
	// [ErrEncryptionFailed] for any internal failure.
	Encrypt(ctx context.Context, document string, password string) (models.Envelope, error)

	// Decrypt opens an envelope and returns the recovered document. When
	// the password gate applied, the result is the decoded object with
	// the password-hash field stripped; in every other case it is the
	// plaintext exactly as it was encrypted, as a string.
	//
	// Returns [ErrInvalidEnvelope] for a structurally broken envelope,
	// [ErrPasswordRequired] / [ErrInvalidPassword] when the password gate
	// rejects the call, and [ErrDecryptionFailed] for anything else.
	Decrypt(ctx context.Context, envelope models.Envelope, password string) (any, error)
}

// AppInfoService exposes build and version metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
