// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package models

import "encoding/json"

// EncryptRequest is the body of POST /api/board/encrypt.
//
// Data may be either a JSON string or any JSON object/value; the handler
// stringifies non-string values before encryption, matching what the board
// editor sends. Password is optional; when present the document is
// additionally password-protected inside the encrypted payload.
type EncryptRequest struct {
	Data     json.RawMessage `json:"data"`
	Password string          `json:"password,omitempty"`
}

// EncryptResponse is the success body of POST /api/board/encrypt.
type EncryptResponse struct {
	Encrypted Envelope `json:"encrypted"`
}

// DecryptRequest is the body of POST /api/board/decrypt.
//
// EncryptedData is a pointer so that a missing field can be told apart from
// an empty envelope; both are rejected as malformed.
type DecryptRequest struct {
	EncryptedData *Envelope `json:"encryptedData"`
	Password      string    `json:"password,omitempty"`
}

// DecryptResponse is the success body of POST /api/board/decrypt. Data is
// the recovered document: the plaintext string exactly as it was encrypted,
// or, for a password-protected board, the decoded object with the
// password-hash field already stripped.
type DecryptResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the body returned with any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
