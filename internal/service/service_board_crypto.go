// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package service

import (
	"context"
	"fmt"

	"github.com/pinatlas/board-vault/internal/config"
	"github.com/pinatlas/board-vault/internal/crypto"
	"github.com/pinatlas/board-vault/internal/logger"
	"github.com/pinatlas/board-vault/models"
)

// boardCryptoService is the private implementation of [BoardCryptoService].
//
// It holds the long-term server secret and nothing else: every derived key
// is recomputed inside one call and dropped when the call returns. The
// deliberate absence of key caching is what keeps the service free of
// key-lifetime bugs.
type boardCryptoService struct {
	keychain crypto.KeyChainService
	secret   string

	logger *logger.Logger
}

// NewBoardCryptoService constructs a [BoardCryptoService] bound to the
// configured application secret. Returns [ErrSecretNotConfigured] when the
// secret is empty, so a misconfigured server refuses to start instead of
// failing on its first request.
func NewBoardCryptoService(keychain crypto.KeyChainService, cfg config.App, logger *logger.Logger) (BoardCryptoService, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretNotConfigured
	}

	return &boardCryptoService{
		keychain: keychain,
		secret:   cfg.Secret,
		logger:   logger,
	}, nil
}

// Encrypt implements [BoardCryptoService].
func (s *boardCryptoService) Encrypt(ctx context.Context, document string, password string) (models.Envelope, error) {
	if document == "" {
		return models.Envelope{}, ErrEmptyDocument
	}

	// 1. Optional password gate: embed the hash inside the plaintext.
	plaintext, err := protect(document, password)
	if err != nil {
		return models.Envelope{}, s.encryptFailure(ctx, "password gate", err)
	}

	// 2. Fresh randomness for this call only.
	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return models.Envelope{}, s.encryptFailure(ctx, "generate salt", err)
	}
	nonce, err := s.keychain.GenerateNonce()
	if err != nil {
		return models.Envelope{}, s.encryptFailure(ctx, "generate nonce", err)
	}

	// 3. Derive, seal, encode.
	key, err := s.keychain.DeriveKey(s.secret, salt)
	if err != nil {
		return models.Envelope{}, s.encryptFailure(ctx, "derive key", err)
	}
	ciphertext, err := s.keychain.Seal(key, nonce, []byte(plaintext))
	if err != nil {
		return models.Envelope{}, s.encryptFailure(ctx, "seal", err)
	}

	return crypto.EncodeEnvelope(salt, nonce, ciphertext), nil
}

// Decrypt implements [BoardCryptoService].
func (s *boardCryptoService) Decrypt(ctx context.Context, envelope models.Envelope, password string) (any, error) {
	// 1. Structural validation and decoding, strictly before any crypto.
	salt, nonce, ciphertext, err := crypto.DecodeEnvelope(envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	// 2. Re-derive the key from the envelope's own salt and open.
	key, err := s.keychain.DeriveKey(s.secret, salt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("key derivation failed during decrypt")
		return nil, fmt.Errorf("%w: key derivation", ErrDecryptionFailed)
	}
	plaintext, err := s.keychain.Open(key, nonce, ciphertext)
	if err != nil {
		// Cause stays in the log; callers get one opaque failure whether
		// the data was tampered with or the secret is wrong.
		logger.FromContext(ctx).Err(err).Msg("envelope failed authenticated decryption")
		return nil, ErrDecryptionFailed
	}

	// 3. Password gate runs only after integrity is proven.
	document, err := unprotect(plaintext, password)
	if err != nil {
		return nil, err
	}

	return document, nil
}

// encryptFailure logs the detailed cause and collapses it into the opaque
// [ErrEncryptionFailed] the caller is allowed to see.
func (s *boardCryptoService) encryptFailure(ctx context.Context, stage string, err error) error {
	logger.FromContext(ctx).Err(err).Str("stage", stage).Msg("encrypt path failed")
	return ErrEncryptionFailed
}
