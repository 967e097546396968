package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	require.False(t, s.Debug)
	require.Equal(t, ColorAuto, s.Color)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	appDir := filepath.Join(dir, "tyg_template")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "config.yaml"),
		[]byte("debug: true\ncolor: never\n"), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	require.True(t, s.Debug)
	require.Equal(t, ColorNever, s.Color)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TYG_COLOR", "always")

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, ColorAlways, s.Color)
}

func TestLoadRejectsBadColorMode(t *testing.T) {
	t.Setenv("TYG_COLOR", "sometimes")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid color mode")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	appDir := filepath.Join(dir, "tyg_template")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "config.yaml"),
		[]byte("debug: [unclosed\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
