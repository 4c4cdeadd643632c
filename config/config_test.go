package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/norman784/amethyst/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {

	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	src := `window:
  title: demo
  width: 800
  height: 600
  vsync: false
renderer:
  clear_color: [0.1, 0.2, 0.3, 1]
  transparency: true
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(600), cfg.Window.Height)
	assert.False(t, cfg.Window.Vsync)

	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Renderer.ClearColor)
	assert.True(t, cfg.Renderer.Transparency)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: partial\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "partial", cfg.Window.Title)
	assert.Equal(t, config.Default().Window.Width, cfg.Window.Width)
}

func TestLoadBadYaml(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [not a mapping"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
