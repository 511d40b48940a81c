package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dixis/shipzone/pkg/config"
)

func TestNewWithoutConfigFile(t *testing.T) {
	a, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "shipzone", a.Config.App.Name)
	assert.True(t, filepath.IsAbs(a.OutputDir))

	pub, err := a.Publisher(context.Background())
	require.NoError(t, err)
	assert.Nil(t, pub)
	assert.False(t, pub.Enabled())
}

func TestNewWithDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHIPZONE_OUTPUT_DIR", dir)

	a, err := New(config.DefaultPath)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "shipzone", a.Config.App.Name)
	assert.Equal(t, dir, a.OutputDir)
}

func TestNewInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipzone.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  url: \"\"\n"), 0o644))

	_, err := New(path)
	assert.Error(t, err)
}

func TestPublisherWithQueueOnly(t *testing.T) {
	t.Setenv("SHIPZONE_OUTPUT_DIR", t.TempDir())
	t.Setenv("SHIPZONE_LMSTFY_HOST", "127.0.0.1")
	t.Setenv("SHIPZONE_LMSTFY_NAMESPACE", "dixis")
	t.Setenv("SHIPZONE_LMSTFY_TOKEN", "token")

	a, err := New("")
	require.NoError(t, err)
	defer a.Close()

	pub, err := a.Publisher(context.Background())
	require.NoError(t, err)
	assert.True(t, pub.Enabled())
}
