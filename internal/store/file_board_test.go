package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinatlas/board-vault/models"
)

var testEnvelope = models.Envelope{
	Salt:       "c2FsdHNhbHRzYWx0c2FsdA==",
	IV:         "bm9uY2Vub25jZW5v",
	Ciphertext: "Y2lwaGVydGV4dA==",
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewBoardFileStore()
	path := filepath.Join(t.TempDir(), "trip.enc.json")

	written, err := s.Save(context.Background(), path, testEnvelope)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	loaded, err := s.Load(context.Background(), written)
	require.NoError(t, err)
	assert.Equal(t, testEnvelope, loaded)
}

func TestSave_AppendsEncryptedSuffix(t *testing.T) {
	s := NewBoardFileStore()
	path := filepath.Join(t.TempDir(), "myboard.json")

	written, err := s.Save(context.Background(), path, testEnvelope)

	require.NoError(t, err)
	assert.Equal(t, path+EncryptedFileSuffix, written)
	_, err = os.Stat(written)
	require.NoError(t, err)
}

func TestSave_RejectsIncompleteEnvelope(t *testing.T) {
	s := NewBoardFileStore()

	_, err := s.Save(context.Background(), filepath.Join(t.TempDir(), "x"), models.Envelope{Salt: "cw=="})

	assert.True(t, errors.Is(err, ErrMalformedBoardFile))
}

func TestSave_LeavesNoTempFileBehind(t *testing.T) {
	s := NewBoardFileStore()
	dir := t.TempDir()

	_, err := s.Save(context.Background(), filepath.Join(dir, "board"), testEnvelope)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "board"+EncryptedFileSuffix, entries[0].Name())
}

func TestLoad_MissingFile(t *testing.T) {
	s := NewBoardFileStore()

	_, err := s.Load(context.Background(), filepath.Join(t.TempDir(), "absent.enc.json"))

	assert.True(t, errors.Is(err, ErrBoardFileNotFound))
}

func TestLoad_MalformedFile(t *testing.T) {
	s := NewBoardFileStore()
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "definitely not json"},
		{"incomplete envelope", `{"salt":"cw=="}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+EncryptedFileSuffix)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := s.Load(context.Background(), path)

			assert.True(t, errors.Is(err, ErrMalformedBoardFile))
		})
	}
}

func TestSaveLoad_CancelledContext(t *testing.T) {
	s := NewBoardFileStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, filepath.Join(t.TempDir(), "x"), testEnvelope)
	assert.Error(t, err)

	_, err = s.Load(ctx, "anywhere")
	assert.Error(t, err)
}
