// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package models

// Envelope is the wire and storage representation of one encrypted board
// document. All three fields are base64-encoded (standard encoding) byte
// strings: a 16-byte key-derivation salt, a 12-byte AES-GCM nonce, and the
// ciphertext with its authentication tag appended by the AEAD primitive.
//
// An envelope is created fresh on every encryption, never mutated, and
// consumed whole by a single decryption. The same JSON shape is used both
// on the wire and in the persisted board file.
type Envelope struct {
	// Salt is the base64-encoded random salt mixed into key derivation.
	Salt string `json:"salt"`

	// IV is the base64-encoded GCM nonce, unique per encryption.
	IV string `json:"iv"`

	// Ciphertext is the base64-encoded AEAD output (data ‖ tag).
	Ciphertext string `json:"ciphertext"`
}

// IsComplete reports whether all three envelope fields are present and
// non-empty. A structurally incomplete envelope is a format error and must
// be rejected before any cryptographic work is attempted.
func (e Envelope) IsComplete() bool {
	return e.Salt != "" && e.IV != "" && e.Ciphertext != ""
}
