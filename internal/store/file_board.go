// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pinatlas/board-vault/models"
)

// EncryptedFileSuffix marks a board file as encrypted. The surrounding
// application decides how to open a file purely by this naming convention,
// so the store enforces it on every write.
const EncryptedFileSuffix = ".enc.json"

// boardFileStore is the filesystem implementation of [BoardFileStore].
type boardFileStore struct{}

// NewBoardFileStore constructs a [BoardFileStore] backed by the local
// filesystem.
func NewBoardFileStore() BoardFileStore {
	return &boardFileStore{}
}

// Save implements [BoardFileStore]. The file is first written to a
// temporary sibling and then renamed over the target, so a crash mid-write
// never leaves a truncated envelope behind.
func (b *boardFileStore) Save(ctx context.Context, path string, envelope models.Envelope) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !envelope.IsComplete() {
		return "", fmt.Errorf("%w: refusing to save an incomplete envelope", ErrMalformedBoardFile)
	}

	if !strings.HasSuffix(path, EncryptedFileSuffix) {
		path += EncryptedFileSuffix
	}

	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize envelope: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".board-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write board file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close board file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename board file: %w", err)
	}

	return path, nil
}

// Load implements [BoardFileStore].
func (b *boardFileStore) Load(ctx context.Context, path string) (models.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return models.Envelope{}, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Envelope{}, fmt.Errorf("%w: %s", ErrBoardFileNotFound, path)
		}
		return models.Envelope{}, fmt.Errorf("read board file: %w", err)
	}

	var envelope models.Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedBoardFile, err)
	}
	if !envelope.IsComplete() {
		return models.Envelope{}, fmt.Errorf("%w: missing envelope fields", ErrMalformedBoardFile)
	}

	return envelope, nil
}
