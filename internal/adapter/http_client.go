package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pinatlas/board-vault/models"
)

// HTTPClientConfig configures [NewHTTPVaultAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpVaultAdapter struct {
	client *resty.Client
}

// NewHTTPVaultAdapter constructs a [VaultAdapter] speaking the server's
// JSON/HTTP contract. Zero-value config fields fall back to localhost and
// a 15 second timeout.
func NewHTTPVaultAdapter(cfg HTTPClientConfig) VaultAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVaultAdapter{client: cli}
}

func (h *httpVaultAdapter) Encrypt(ctx context.Context, document string, password string) (models.Envelope, error) {
	request := map[string]any{"data": document}
	if password != "" {
		request["password"] = password
	}

	var response models.EncryptResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post("/api/board/encrypt")
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Envelope{}, err
	}

	return response.Encrypted, nil
}

func (h *httpVaultAdapter) Decrypt(ctx context.Context, envelope models.Envelope, password string) (any, error) {
	request := map[string]any{"encryptedData": envelope}
	if password != "" {
		request["password"] = password
	}

	var response models.DecryptResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post("/api/board/decrypt")
	if err != nil {
		return nil, fmt.Errorf("decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (h *httpVaultAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
