package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every cryptographic primitive used to protect a
// board document. It knows nothing about HTTP, passwords, or JSON; its
// single job is deriving keys and sealing/opening byte payloads.
//
// Encryption walk-through:
//
//	salt  = GenerateSalt()                 (step 1)
//	nonce = GenerateNonce()                (step 1)
//	key   = DeriveKey(secret, salt)        (step 2)
//	ct    = Seal(key, nonce, plaintext)    (step 3)
//
// Decryption derives the same key from the envelope's own salt and calls
// [KeyChainService.Open]. The derived key lives only on the stack of one
// call; it is never cached, persisted, or logged.
type KeyChainService interface {
	// GenerateSalt draws a fresh random 16-byte key-derivation salt.
	// The salt is not a secret: it travels in the clear inside the
	// envelope so the same key can be re-derived on decryption.
	GenerateSalt() ([]byte, error)

	// GenerateNonce draws a fresh random 12-byte AES-GCM nonce. A nonce
	// must never be reused with the same key; pairing every nonce with a
	// fresh salt (hence a fresh key) makes reuse structurally impossible.
	GenerateNonce() ([]byte, error)

	// DeriveKey stretches the server secret and a salt into a 256-bit
	// symmetric key via PBKDF2-SHA256 with a high fixed iteration count.
	// Deterministic: the same (secret, salt) pair always yields the same
	// key. Returns [ErrNoSecret] if secret is empty.
	DeriveKey(secret string, salt []byte) ([]byte, error)

	// Seal encrypts plaintext with AES-256-GCM under key and nonce and
	// returns ciphertext ‖ tag. All randomness is supplied by the caller;
	// Seal itself is deterministic.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open verifies and decrypts a Seal output. It fails, never returning
	// garbage, on a wrong key, a flipped bit anywhere in the inputs, or
	// truncated ciphertext.
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}
