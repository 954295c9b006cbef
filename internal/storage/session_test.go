package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/glowcart/store-admin/internal/models"
	"github.com/glowcart/store-admin/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	user := &models.User{
		ID:    "2f9c8a14-6f5d-4f7e-9b1a-0c3d5e7f9a1b",
		Name:  "Beauty Store Owner",
		Email: "owner@glowcart.io",
		Role:  "admin",
	}

	require.NoError(t, store.Save(user))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestSessionStoreLoadWithoutSave(t *testing.T) {
	store := storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := store.Load()

	assert.ErrorIs(t, err, storage.ErrNoSession)
}

func TestSessionStoreClear(t *testing.T) {
	store := storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&models.User{ID: "1", Name: "Owner", Email: "owner@glowcart.io", Role: "admin"}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, storage.ErrNoSession)

	// Clearing an empty store is fine.
	assert.NoError(t, store.Clear())
}

func TestSessionStoreCreatesParentDirectory(t *testing.T) {
	store := storage.NewSessionStore(filepath.Join(t.TempDir(), "state", "session.json"))

	err := store.Save(&models.User{ID: "1", Name: "Owner", Email: "owner@glowcart.io", Role: "admin"})

	assert.NoError(t, err)
}
