package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAuthor, cfg.Author)
	assert.Equal(t, DefaultAuthorURI, cfg.AuthorURI)
	assert.Empty(t, cfg.OutputDir)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte("author: Jane Doe\nauthorUri: https://example.com/\n"), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", cfg.Author)
	assert.Equal(t, "https://example.com/", cfg.AuthorURI)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte("author: File Author\n"), 0o644))

	t.Setenv("PLUGSMITH_AUTHOR", "Env Author")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Env Author", cfg.Author)
}
