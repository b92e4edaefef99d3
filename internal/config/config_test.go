package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Bind)
	assert.Equal(t, 8050, cfg.Port)
	assert.Equal(t, 900, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "line", cfg.Kind)
	assert.True(t, cfg.Toolbar)
	assert.False(t, cfg.Debug)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csviz.toml")
	content := `
bind = "127.0.0.1"
port = 9000
delimiter = ";"
kind = "bar"
toolbar = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Bind)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "bar", cfg.Kind)
	assert.False(t, cfg.Toolbar)

	// Untouched fields keep their defaults.
	assert.Equal(t, 900, cfg.Width)
	assert.Equal(t, 12, cfg.FontSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDelimiterRune(t *testing.T) {
	cfg := Default()

	r, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ',', r)

	cfg.Delimiter = "\t"
	r, err = cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, '\t', r)

	cfg.Delimiter = ""
	_, err = cfg.DelimiterRune()
	assert.Error(t, err)

	cfg.Delimiter = ";;"
	_, err = cfg.DelimiterRune()
	assert.Error(t, err)
}
