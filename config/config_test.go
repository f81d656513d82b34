package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/config"
	"github.com/tinbergen/chesscore/search"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chesscore.toml")
	contents := `
[search]
depth = 5

[book]
path = "books/baron30.bin"
enabled = true

[clock]
move_time_ms = 2000
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.Depth)
	assert.Equal(t, "books/baron30.bin", cfg.Book.Path)
	assert.True(t, cfg.Book.Enabled)
	assert.Equal(t, 2000, cfg.Clock.MoveTimeMS)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultUsesSearchDefaultDepth(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, search.DefaultDepth, cfg.Search.Depth)
	assert.False(t, cfg.Book.Enabled)
	assert.Equal(t, 0, cfg.Clock.MoveTimeMS)
}
