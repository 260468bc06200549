package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndExists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocal(dir, "/static/uploads/")
	require.NoError(t, err)

	url, err := store.Save(ctx, "abc.png", strings.NewReader("pixels"))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/abc.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	exists, err := store.Exists(ctx, url)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocal(dir, "/static/uploads/")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocal_Remove(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocal(dir, "/static/uploads/")
	require.NoError(t, err)

	url, err := store.Save(ctx, "gone.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, url))

	exists, err := store.Exists(ctx, url)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing again is not an error.
	assert.NoError(t, store.Remove(ctx, url))
}

func TestLocal_Owns(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/static/uploads/")
	require.NoError(t, err)

	assert.True(t, store.Owns("/static/uploads/a.png"))
	assert.False(t, store.Owns("https://cdn.example.com/x.png"))
	assert.False(t, store.Owns("/other/a.png"))
}

func TestLocal_RejectsPathTraversal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocal(dir, "/static/uploads/")
	require.NoError(t, err)

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, store.Remove(ctx, "/static/uploads/../victim.txt"))

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocal_RequiresDirectory(t *testing.T) {
	_, err := NewLocal("", "/static/uploads/")
	assert.Error(t, err)
}
