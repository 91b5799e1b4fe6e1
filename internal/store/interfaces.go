package store

//go:generate mockgen -source=interfaces.go -destination=../mock/board_file_store_mock.go -package=mock

import (
	"context"

	"github.com/pinatlas/board-vault/models"
)

// BoardFileStore persists the client-visible artifact of the system: a JSON
// file holding exactly the three envelope fields. The store lives on the
// client side of the trust boundary; it only ever touches ciphertext.
type BoardFileStore interface {
	// Save writes envelope to path atomically. When path lacks the
	// [EncryptedFileSuffix] the suffix is appended, so every file written
	// by the store is recognizable as encrypted by its name alone.
	// Returns the path actually written.
	Save(ctx context.Context, path string, envelope models.Envelope) (string, error)

	// Load reads and structurally validates an envelope from path.
	Load(ctx context.Context, path string) (models.Envelope, error)
}
