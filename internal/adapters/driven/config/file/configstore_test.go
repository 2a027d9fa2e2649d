package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigStore_SetAndGet tests the basic set/get round trip
func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("index.collection", "profiles"))
	require.NoError(t, store.Set("ingest.batch_size", 100))
	require.NoError(t, store.Set("llm.temperature", 0.5))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "profiles", store.GetString("index.collection"))
	assert.Equal(t, 100, store.GetInt("ingest.batch_size"))
	assert.InDelta(t, 0.5, store.GetFloat("llm.temperature"), 0.001)
	assert.True(t, store.GetBool("verbose"))
}

// TestConfigStore_MissingKeys tests zero values for absent keys
func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.Equal(t, 0.0, store.GetFloat("nope"))
	assert.False(t, store.GetBool("nope"))
}

// TestConfigStore_Persistence tests that values survive reopening
func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("source.provider", "postgres"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "postgres", reopened.GetString("source.provider"))
}

// TestConfigStore_FlattensNestedTOML tests dot-notation access to
// nested TOML tables
func TestConfigStore_FlattensNestedTOML(t *testing.T) {
	dir := t.TempDir()
	content := "[index]\nprovider = \"qdrant\"\ncollection = \"profiles\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "qdrant", store.GetString("index.provider"))
	assert.Equal(t, "profiles", store.GetString("index.collection"))
}
