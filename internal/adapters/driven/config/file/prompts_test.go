package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// TestPromptStore_LoadDefaults tests that defaults load and files are
// created lazily
func TestPromptStore_LoadDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// No I/O before first Load
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))

	prompt, err := store.Load(driven.PromptHyde)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Query: %s")

	// First Load created the default files
	_, statErr = os.Stat(filepath.Join(dir, "hyde.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "answer.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, statErr)
}

// TestPromptStore_CustomPromptWins tests that a user-edited file
// overrides the default
func TestPromptStore_CustomPromptWins(t *testing.T) {
	dir := t.TempDir()
	custom := "Describe the ideal mentor for: %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hyde.txt"), []byte(custom), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptHyde)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

// TestPromptStore_UnknownPrompt tests the error path for unknown names
func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	require.Error(t, err)
}

// TestPromptStore_Reload tests that Reload picks up edited files
func TestPromptStore_Reload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptAnswer)
	require.NoError(t, err)

	edited := "Answer with citations.\nQuery: %s\nContext: %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answer.txt"), []byte(edited), 0600))

	store.Reload()

	prompt, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)
	assert.Equal(t, edited, prompt)
}
