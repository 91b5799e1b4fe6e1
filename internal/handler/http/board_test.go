package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pinatlas/board-vault/internal/logger"
	"github.com/pinatlas/board-vault/internal/mock"
	"github.com/pinatlas/board-vault/internal/service"
	"github.com/pinatlas/board-vault/models"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockBoardCryptoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cryptoSvc := mock.NewMockBoardCryptoService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	h := NewHandler(&service.Services{
		BoardCryptoService: cryptoSvc,
		AppInfoService:     appInfo,
	}, logger.Nop())

	return h, cryptoSvc
}

func postJSON(t *testing.T, router http.Handler, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// ─────────────────────────────────────────────
// POST /api/board/encrypt
// ─────────────────────────────────────────────

func TestEncrypt_ReturnsEnvelope(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)
	envelope := models.Envelope{Salt: "c2FsdA==", IV: "aXY=", Ciphertext: "Y3Q="}

	cryptoSvc.EXPECT().
		Encrypt(gomock.Any(), `{"name":"Test"}`, "").
		Return(envelope, nil)

	w := postJSON(t, h.Init(), "/api/board/encrypt", `{"data":"{\"name\":\"Test\"}"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response models.EncryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, envelope, response.Encrypted)
}

func TestEncrypt_ObjectDataIsStringified(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)

	cryptoSvc.EXPECT().
		Encrypt(gomock.Any(), `{"name":"Test"}`, "pw").
		Return(models.Envelope{Salt: "cw==", IV: "aQ==", Ciphertext: "Yw=="}, nil)

	w := postJSON(t, h.Init(), "/api/board/encrypt", `{"data":{"name":"Test"},"password":"pw"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEncrypt_MissingData_BadRequest(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, body := range []string{`{}`, `{"data":""}`, `{"data":null}`} {
		w := postJSON(t, router, "/api/board/encrypt", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestEncrypt_MalformedJSONBody_BadRequest(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postJSON(t, h.Init(), "/api/board/encrypt", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncrypt_InternalFailure_OpaqueError(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)

	cryptoSvc.EXPECT().
		Encrypt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Envelope{}, service.ErrEncryptionFailed)

	w := postJSON(t, h.Init(), "/api/board/encrypt", `{"data":"doc"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "encryption failed", response.Error)
}

// ─────────────────────────────────────────────
// POST /api/board/decrypt
// ─────────────────────────────────────────────

func TestDecrypt_ReturnsDocument(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)
	envelope := models.Envelope{Salt: "c2FsdA==", IV: "aXY=", Ciphertext: "Y3Q="}

	cryptoSvc.EXPECT().
		Decrypt(gomock.Any(), envelope, "").
		Return(`{"name":"Test"}`, nil)

	w := postJSON(t, h.Init(), "/api/board/decrypt",
		`{"encryptedData":{"salt":"c2FsdA==","iv":"aXY=","ciphertext":"Y3Q="}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response models.DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, `{"name":"Test"}`, response.Data)
}

func TestDecrypt_PasswordPathReturnsObject(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)

	cryptoSvc.EXPECT().
		Decrypt(gomock.Any(), gomock.Any(), "pw").
		Return(map[string]any{"name": "Test"}, nil)

	w := postJSON(t, h.Init(), "/api/board/decrypt",
		`{"encryptedData":{"salt":"cw==","iv":"aQ==","ciphertext":"Yw=="},"password":"pw"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response models.DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, map[string]any{"name": "Test"}, response.Data)
}

func TestDecrypt_MissingEnvelope_BadRequest(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postJSON(t, h.Init(), "/api/board/decrypt", `{"password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecrypt_IncompleteEnvelope_BadRequest(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)

	cryptoSvc.EXPECT().
		Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrInvalidEnvelope)

	w := postJSON(t, h.Init(), "/api/board/decrypt", `{"encryptedData":{"salt":"c2FsdA=="}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecrypt_PasswordFailuresCollapseTo401(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"password required", service.ErrPasswordRequired},
		{"invalid password", service.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cryptoSvc := newTestHandler(t)
			cryptoSvc.EXPECT().
				Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			w := postJSON(t, h.Init(), "/api/board/decrypt",
				`{"encryptedData":{"salt":"cw==","iv":"aQ==","ciphertext":"Yw=="}}`)

			require.Equal(t, http.StatusUnauthorized, w.Code)

			// Identical body for both causes: the response must not leak
			// whether a password was required or merely wrong.
			var response models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "invalid password", response.Error)
		})
	}
}

func TestDecrypt_AEADFailure_500WithGenericMessage(t *testing.T) {
	h, cryptoSvc := newTestHandler(t)

	cryptoSvc.EXPECT().
		Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrDecryptionFailed)

	w := postJSON(t, h.Init(), "/api/board/decrypt",
		`{"encryptedData":{"salt":"cw==","iv":"aQ==","ciphertext":"Yw=="}}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "decryption failed", response.Error)
}

// ─────────────────────────────────────────────
// documentText
// ─────────────────────────────────────────────

func TestDocumentText(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"json string", `"{\"a\":1}"`, `{"a":1}`, true},
		{"json object", `{"a":1}`, `{"a":1}`, true},
		{"empty string", `""`, "", false},
		{"null", `null`, "", false},
		{"absent", ``, "", false},
		{"number", `42`, "42", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}

			got, ok := documentText(raw)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
