package http

import (
	"errors"
	"net/http"

	"github.com/pinatlas/board-vault/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyDocument:   http.StatusBadRequest,
	service.ErrInvalidEnvelope: http.StatusBadRequest,

	service.ErrPasswordRequired: http.StatusUnauthorized,
	service.ErrInvalidPassword:  http.StatusUnauthorized,

	service.ErrEncryptionFailed:    http.StatusInternalServerError,
	service.ErrDecryptionFailed:    http.StatusInternalServerError,
	service.ErrSecretNotConfigured: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// externalMessage picks the client-visible text for a service error.
//
// Both password failures collapse to the same message so a response never
// reveals whether a password was merely missing or actually wrong; both
// internal failures collapse so tampering and misconfiguration are
// indistinguishable from the outside.
func externalMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyDocument):
		return service.ErrEmptyDocument.Error()
	case errors.Is(err, service.ErrInvalidEnvelope):
		return service.ErrInvalidEnvelope.Error()
	case errors.Is(err, service.ErrPasswordRequired), errors.Is(err, service.ErrInvalidPassword):
		return "invalid password"
	case errors.Is(err, service.ErrEncryptionFailed):
		return "encryption failed"
	default:
		return "decryption failed"
	}
}
