// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed envelope geometry. Changing any of these breaks compatibility with
// every board file encrypted so far.
const (
	// SaltSize is the length in bytes of the key-derivation salt.
	SaltSize = 16

	// NonceSize is the length in bytes of the AES-GCM nonce.
	NonceSize = 12

	// KeySize is the length in bytes of the derived AES-256 key.
	KeySize = 32

	// kdfIterations is the PBKDF2 iteration count. High and fixed: key
	// derivation is the dominant cost of every request, intentionally so.
	kdfIterations = 100_000
)

// ErrNoSecret is returned by [KeyChainService.DeriveKey] when the server
// secret is empty. It is a configuration error, kept distinct from
// integrity failures so callers never confuse "misconfigured" with
// "tampered ciphertext".
var ErrNoSecret = errors.New("encryption secret is not configured")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// random is the source of salts and nonces. Production uses the OS
	// CSPRNG; tests may substitute a seeded reader to make randomness
	// assertions deterministic.
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by the OS CSPRNG
// (crypto/rand).
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// NewKeyChainServiceWithRandom constructs a [KeyChainService] drawing salts
// and nonces from the given reader instead of the OS CSPRNG. Intended for
// tests; never use a deterministic reader in production.
func NewKeyChainServiceWithRandom(random io.Reader) KeyChainService {
	return &keyChainService{random: random}
}

// GenerateSalt implements [KeyChainService]. It reads [SaltSize] random
// bytes from the configured random source. Returns an error if the random
// read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// GenerateNonce implements [KeyChainService]. It reads [NonceSize] random
// bytes from the configured random source. Returns an error if the random
// read fails.
func (k *keyChainService) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(k.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit key from the
// server secret and salt using PBKDF2 with SHA-256 and a fixed iteration
// count. The secret never appears in the output, in logs, or on the wire.
func (k *keyChainService) DeriveKey(secret string, salt []byte) ([]byte, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("derive key: salt length = %d, want %d", len(salt), SaltSize)
	}

	return pbkdf2.Key([]byte(secret), salt, kdfIterations, KeySize, sha256.New), nil
}

// Seal implements [KeyChainService]. It encrypts plaintext with AES-256-GCM
// and returns ciphertext with the 16-byte authentication tag appended, the
// primitive's native packing. Nonce and key are supplied by the caller, so
// two Seal calls with identical inputs produce identical output.
func (k *keyChainService) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("seal: nonce length = %d, want %d", len(nonce), gcm.NonceSize())
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService]. It decrypts a [keyChainService.Seal]
// output and verifies its authentication tag. Any modification of key,
// nonce, or ciphertext surfaces as an error here; this is the sole
// integrity check in the system.
func (k *keyChainService) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("open: nonce length = %d, want %d", len(nonce), gcm.NonceSize())
	}
	if len(ciphertext) < gcm.Overhead() {
		return nil, fmt.Errorf("open: ciphertext shorter than the authentication tag")
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Deliberately not distinguishing a wrong key from tampered data.
		return nil, fmt.Errorf("open: %w", err)
	}

	return plaintext, nil
}

// newGCM builds the AES-256-GCM AEAD for the given key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key length = %d, want %d", len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
