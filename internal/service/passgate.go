// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// passwordHashField is the reserved key carrying the password hash inside a
// protected document. The board schema owns every other field name, so a
// collision is treated as a malformed document rather than silently
// overwritten.
const passwordHashField = "_passwordHash"

// passwordDigest returns the lowercase hex SHA-256 digest of password.
// The digest, never the password, is what gets embedded into the plaintext
// before the outer encryption is applied.
func passwordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// protect prepares the plaintext handed to the AEAD engine. With an empty
// password the document passes through untouched. Otherwise the document
// must be a JSON object; its copy gains the reserved hash field and is
// re-serialized. The password itself is discarded here and is never part
// of the plaintext.
func protect(document, password string) (string, error) {
	if password == "" {
		return document, nil
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		return "", fmt.Errorf("password protection requires a JSON object document: %w", err)
	}
	if _, exists := doc[passwordHashField]; exists {
		return "", fmt.Errorf("document already carries the reserved %q field", passwordHashField)
	}

	doc[passwordHashField] = passwordDigest(password)

	protected, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serialize protected document: %w", err)
	}

	return string(protected), nil
}

// unprotect runs after a successful AEAD decryption. JSON parsing happens
// only to look for the reserved hash field; when the plaintext is not a
// JSON object, or is an object without the field, the original bytes are
// returned untouched so the caller gets back exactly what was encrypted.
// An object carrying the reserved hash field demands a matching password:
// [ErrPasswordRequired] when none was given, [ErrInvalidPassword] when the
// recomputed digest differs. On success the reserved field is stripped and
// the remaining object is returned.
func unprotect(plaintext []byte, password string) (any, error) {
	var doc map[string]any
	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return string(plaintext), nil
	}

	raw, exists := doc[passwordHashField]
	if !exists {
		// No protection was requested; a supplied password is ignored.
		return string(plaintext), nil
	}

	if password == "" {
		return nil, ErrPasswordRequired
	}

	stored, ok := raw.(string)
	if !ok {
		// The gate field is present but unreadable; nothing can verify it.
		return nil, ErrInvalidPassword
	}

	supplied := passwordDigest(password)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return nil, ErrInvalidPassword
	}

	delete(doc, passwordHashField)
	return doc, nil
}
