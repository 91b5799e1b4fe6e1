package service

import (
	"github.com/pinatlas/board-vault/internal/config"
	"github.com/pinatlas/board-vault/internal/crypto"
	"github.com/pinatlas/board-vault/internal/logger"
)

// Services aggregates every business service exposed to the transport
// layer.
type Services struct {
	BoardCryptoService BoardCryptoService
	AppInfoService     AppInfoService
}

// NewServices wires the service container from configuration. Construction
// fails fast when a required setting (encryption secret, app version) is
// absent; the server never starts half-configured.
func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	boardCrypto, err := NewBoardCryptoService(crypto.NewKeyChainService(), cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		BoardCryptoService: boardCrypto,
		AppInfoService:     appInfo,
	}, nil
}
