package http

import (
	"encoding/json"
	"net/http"

	"github.com/pinatlas/board-vault/internal/logger"
	"github.com/pinatlas/board-vault/internal/utils"
	"github.com/pinatlas/board-vault/models"
)

// encrypt handles POST /api/board/encrypt.
func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	document, ok := documentText(request.Data)
	if !ok {
		log.Error().Str("func", "*Handler.encrypt").Msg("no data to encrypt was provided")
		writeError(w, "no data to encrypt was provided", http.StatusBadRequest)
		return
	}

	envelope, err := h.services.BoardCryptoService.Encrypt(ctx, document, request.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error encrypting board document")
		writeError(w, externalMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EncryptResponse{Encrypted: envelope}, http.StatusOK)
}

// decrypt handles POST /api/board/decrypt.
func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.EncryptedData == nil {
		log.Error().Str("func", "*Handler.decrypt").Msg("no encrypted data was provided")
		writeError(w, "no encrypted data was provided", http.StatusBadRequest)
		return
	}

	document, err := h.services.BoardCryptoService.Decrypt(ctx, *request.EncryptedData, request.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("error decrypting board document")
		writeError(w, externalMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DecryptResponse{Data: document}, http.StatusOK)
}

// documentText normalizes the request's data field to the plaintext handed
// to the service: a JSON string is used as-is, any other JSON value is
// stringified. Returns ok=false when the field is absent or empty.
func documentText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString, asString != ""
	}

	if string(raw) == "null" {
		return "", false
	}

	// Objects, arrays, and bare scalars alike are encrypted as their JSON
	// text. A scalar like 123 becomes the document "123" and round-trips
	// back as that string.
	return string(raw), true
}

// writeError sends a JSON error body. The message is the external one from
// the errors mapper, never a raw internal error.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
