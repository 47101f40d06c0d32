package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iranbazaar-api/storage"
)

func TestDiskStorage_SaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewDiskStorage(root)
	require.NoError(t, err)

	data := []byte("fake image bytes")
	key := "listings/abc.png"

	err = store.Save(context.Background(), key, bytes.NewReader(data), int64(len(data)), "image/png")
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(root, "listings", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, data, written)

	err = store.Remove(context.Background(), key)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "listings", "abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStorage_RemoveMissingIsNoError(t *testing.T) {
	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "listings/never-there.png"))
}

func TestDiskStorage_URLPath(t *testing.T) {
	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/media/listings/abc.png", store.URLPath("listings/abc.png"))
	assert.Equal(t, "/media/listings/abc.png", store.URLPath("/listings/abc.png"))
}
