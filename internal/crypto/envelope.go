// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/pinatlas/board-vault/models"
)

// Envelope format errors. These are structural: they are detected before
// any key derivation or AEAD work starts.
var (
	// ErrIncompleteEnvelope is returned by [DecodeEnvelope] when at least
	// one of salt, iv, or ciphertext is absent or empty.
	ErrIncompleteEnvelope = errors.New("envelope is missing salt, iv or ciphertext")

	// ErrEnvelopeEncoding is returned by [DecodeEnvelope] when a field is
	// present but not valid base64.
	ErrEnvelopeEncoding = errors.New("envelope field is not valid base64")
)

// EncodeEnvelope packs the raw (salt, nonce, ciphertext) triple into a
// transport-safe [models.Envelope] using standard base64. The mapping is
// exact: DecodeEnvelope(EncodeEnvelope(s, n, c)) returns the same bytes.
func EncodeEnvelope(salt, nonce, ciphertext []byte) models.Envelope {
	return models.Envelope{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}
}

// DecodeEnvelope unpacks a [models.Envelope] into its raw byte triple.
// It rejects incomplete envelopes with [ErrIncompleteEnvelope] and fields
// that fail base64 decoding with [ErrEnvelopeEncoding]; no cryptography is
// attempted in either case.
func DecodeEnvelope(envelope models.Envelope) (salt, nonce, ciphertext []byte, err error) {
	if !envelope.IsComplete() {
		return nil, nil, nil, ErrIncompleteEnvelope
	}

	if salt, err = base64.StdEncoding.DecodeString(envelope.Salt); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt: %w", ErrEnvelopeEncoding, err)
	}
	if nonce, err = base64.StdEncoding.DecodeString(envelope.IV); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: iv: %w", ErrEnvelopeEncoding, err)
	}
	if ciphertext, err = base64.StdEncoding.DecodeString(envelope.Ciphertext); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext: %w", ErrEnvelopeEncoding, err)
	}

	return salt, nonce, ciphertext, nil
}
