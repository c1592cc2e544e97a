package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/senselog/pkg/config"
	"github.com/itohio/senselog/pkg/link"
	"github.com/itohio/senselog/pkg/record"
)

func TestOpenImage_ErasesNewImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.eeprom")

	f, err := openImage(path, 64)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 64), data)
}

func TestOpenImage_PadsShortImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.eeprom")
	require.NoError(t, os.WriteFile(path, []byte("0123"), 0644))

	f, err := openImage(path, 8)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{'0', '1', '2', '3', 0xFF, 0xFF, 0xFF, 0xFF}, data)
}

func TestImageStore_RestoreDump(t *testing.T) {
	cfg = config.Default()
	path := filepath.Join(t.TempDir(), "dump.eeprom")

	f, err := openImage(path, cfg.Storage.Size)
	require.NoError(t, err)
	defer f.Close()

	rec := record.Encode(record.Triple{Temperature: 32, Light: 53, Potentiometer: 10})
	store := imageStore(f)
	require.NoError(t, link.Restore(store, []link.Entry{{Slot: 5, Record: rec}}))

	got, err := store.Read(5)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// untouched slots stay erased
	_, err = record.Decode(mustRead(t, store, 4))
	assert.ErrorIs(t, err, record.ErrMalformed)
}

func mustRead(t *testing.T, store *record.Store, slot int) record.Record {
	t.Helper()
	r, err := store.Read(slot)
	require.NoError(t, err)
	return r
}
