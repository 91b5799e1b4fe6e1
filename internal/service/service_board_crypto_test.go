package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pinatlas/board-vault/internal/config"
	"github.com/pinatlas/board-vault/internal/crypto"
	"github.com/pinatlas/board-vault/internal/logger"
	"github.com/pinatlas/board-vault/internal/mock"
	"github.com/pinatlas/board-vault/models"
)

func newTestCryptoSvc(t *testing.T) BoardCryptoService {
	t.Helper()

	svc, err := NewBoardCryptoService(
		crypto.NewKeyChainService(),
		config.App{Secret: "test-server-secret"},
		logger.Nop(),
	)
	require.NoError(t, err)

	return svc
}

// ─────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────

func TestNewBoardCryptoService_EmptySecret_FailsFast(t *testing.T) {
	svc, err := NewBoardCryptoService(crypto.NewKeyChainService(), config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, ErrSecretNotConfigured))
}

// ─────────────────────────────────────────────
// Encrypt
// ─────────────────────────────────────────────

func TestEncrypt_EmptyDocumentRejected(t *testing.T) {
	svc := newTestCryptoSvc(t)

	_, err := svc.Encrypt(context.Background(), "", "")

	assert.True(t, errors.Is(err, ErrEmptyDocument))
}

func TestEncrypt_ProducesCompleteEnvelope(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"name":"Test"}`, "")

	require.NoError(t, err)
	assert.True(t, envelope.IsComplete())

	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)

	nonce, err := base64.StdEncoding.DecodeString(envelope.IV)
	require.NoError(t, err)
	assert.Len(t, nonce, crypto.NonceSize)
}

func TestEncrypt_SamePlaintextNeverRepeats(t *testing.T) {
	svc := newTestCryptoSvc(t)

	e1, err := svc.Encrypt(context.Background(), `{"name":"Test"}`, "")
	require.NoError(t, err)
	e2, err := svc.Encrypt(context.Background(), `{"name":"Test"}`, "")
	require.NoError(t, err)

	assert.NotEqual(t, e1.Salt, e2.Salt)
	assert.NotEqual(t, e1.IV, e2.IV)
	assert.NotEqual(t, e1.Ciphertext, e2.Ciphertext)
}

func TestEncrypt_PasswordOnNonObjectDocument_OpaqueFailure(t *testing.T) {
	svc := newTestCryptoSvc(t)

	_, err := svc.Encrypt(context.Background(), "not json", "pw")

	// The caller sees one generic failure, never the internal cause.
	assert.True(t, errors.Is(err, ErrEncryptionFailed))
	assert.Equal(t, ErrEncryptionFailed.Error(), err.Error())
}

// ─────────────────────────────────────────────
// Decrypt: round-trips
// ─────────────────────────────────────────────

func TestDecrypt_RoundTripJSONDocument(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"name":"Test"}`, "")
	require.NoError(t, err)

	document, err := svc.Decrypt(context.Background(), envelope, "")

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Test"}`, document)
}

func TestDecrypt_RoundTripIsByteIdentical(t *testing.T) {
	svc := newTestCryptoSvc(t)

	// Formatting quirks must survive the round trip exactly: decryption
	// never re-serializes an ungated document.
	original := `{ "b": 1, "a": 2 }`

	envelope, err := svc.Encrypt(context.Background(), original, "")
	require.NoError(t, err)

	document, err := svc.Decrypt(context.Background(), envelope, "")

	require.NoError(t, err)
	assert.Equal(t, original, document)
}

func TestDecrypt_RoundTripOpaqueString(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), "free-form board notes", "")
	require.NoError(t, err)

	document, err := svc.Decrypt(context.Background(), envelope, "")

	require.NoError(t, err)
	assert.Equal(t, "free-form board notes", document)
}

func TestDecrypt_PasswordRoundTrip(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"a":1}`, "secret12")
	require.NoError(t, err)

	document, err := svc.Decrypt(context.Background(), envelope, "secret12")

	require.NoError(t, err)
	// The hash field never reaches the caller.
	assert.Equal(t, map[string]any{"a": float64(1)}, document)
}

func TestDecrypt_PasswordMissing(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"a":1}`, "secret12")
	require.NoError(t, err)

	_, err = svc.Decrypt(context.Background(), envelope, "")

	assert.True(t, errors.Is(err, ErrPasswordRequired))
}

func TestDecrypt_PasswordWrong(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"a":1}`, "secret12")
	require.NoError(t, err)

	_, err = svc.Decrypt(context.Background(), envelope, "wrong")

	assert.True(t, errors.Is(err, ErrInvalidPassword))
}

func TestDecrypt_Idempotent(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"a":1}`, "secret12")
	require.NoError(t, err)

	first, err := svc.Decrypt(context.Background(), envelope, "secret12")
	require.NoError(t, err)
	second, err := svc.Decrypt(context.Background(), envelope, "secret12")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ─────────────────────────────────────────────
// Decrypt: failure modes
// ─────────────────────────────────────────────

func TestDecrypt_WrongSecretFails(t *testing.T) {
	encryptor := newTestCryptoSvc(t)
	decryptor, err := NewBoardCryptoService(
		crypto.NewKeyChainService(),
		config.App{Secret: "a different secret"},
		logger.Nop(),
	)
	require.NoError(t, err)

	envelope, err := encryptor.Encrypt(context.Background(), `{"name":"Test"}`, "")
	require.NoError(t, err)

	_, err = decryptor.Decrypt(context.Background(), envelope, "")

	assert.True(t, errors.Is(err, ErrDecryptionFailed))
}

// flipByte decodes a base64 envelope field, flips one byte, and re-encodes.
func flipByte(t *testing.T, field string, index int) string {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(field)
	require.NoError(t, err)
	raw[index%len(raw)] ^= 0x01

	return base64.StdEncoding.EncodeToString(raw)
}

func TestDecrypt_TamperedEnvelopeAlwaysFails(t *testing.T) {
	svc := newTestCryptoSvc(t)

	envelope, err := svc.Encrypt(context.Background(), `{"name":"Test"}`, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		tamper func(e models.Envelope) models.Envelope
	}{
		{"flipped salt byte", func(e models.Envelope) models.Envelope {
			e.Salt = flipByte(t, e.Salt, 3)
			return e
		}},
		{"flipped iv byte", func(e models.Envelope) models.Envelope {
			e.IV = flipByte(t, e.IV, 5)
			return e
		}},
		{"flipped ciphertext byte", func(e models.Envelope) models.Envelope {
			e.Ciphertext = flipByte(t, e.Ciphertext, 7)
			return e
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decrypt(context.Background(), tt.tamper(envelope), "")
			assert.True(t, errors.Is(err, ErrDecryptionFailed))
		})
	}
}

func TestDecrypt_IncompleteEnvelope_NoCryptoRuns(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No EXPECT calls registered: any keychain use fails the test, which
	// proves structural rejection happens before cryptography.
	keychain := mock.NewMockKeyChainService(ctrl)

	svc, err := NewBoardCryptoService(keychain, config.App{Secret: "s"}, logger.Nop())
	require.NoError(t, err)

	incomplete := []models.Envelope{
		{},
		{Salt: "c2FsdA==", IV: "aXY="},
		{Salt: "c2FsdA==", Ciphertext: "Y3Q="},
		{IV: "aXY=", Ciphertext: "Y3Q="},
	}

	for _, envelope := range incomplete {
		_, err := svc.Decrypt(context.Background(), envelope, "")
		assert.True(t, errors.Is(err, ErrInvalidEnvelope))
	}
}

func TestDecrypt_UndecodableField_NoCryptoRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)

	svc, err := NewBoardCryptoService(keychain, config.App{Secret: "s"}, logger.Nop())
	require.NoError(t, err)

	_, err = svc.Decrypt(context.Background(), models.Envelope{
		Salt:       "not base64 !!!",
		IV:         "aXY=",
		Ciphertext: "Y3Q=",
	}, "")

	assert.True(t, errors.Is(err, ErrInvalidEnvelope))
}

func TestEncrypt_RandomSourceFailure_Opaque(t *testing.T) {
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)
	keychain.EXPECT().GenerateSalt().Return(nil, errors.New("entropy exhausted"))

	svc, err := NewBoardCryptoService(keychain, config.App{Secret: "s"}, logger.Nop())
	require.NoError(t, err)

	_, err = svc.Encrypt(context.Background(), `{"a":1}`, "")

	assert.True(t, errors.Is(err, ErrEncryptionFailed))
	assert.NotContains(t, err.Error(), "entropy")
}
