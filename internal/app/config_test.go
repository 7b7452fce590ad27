package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(Config{ProjectDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "megaatmega2560", cfg.Board)
	assert.Equal(t, []string{"sensors", "actuators"}, cfg.Categories)
	assert.Equal(t, 5*time.Second, cfg.StatusUpdateInterval)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfigRejectsUnknownCategory(t *testing.T) {
	_, err := NewConfig(Config{ProjectDir: t.TempDir(), Categories: []string{"magnets"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magnets")
}

func TestNewConfigRejectsBadLogSettings(t *testing.T) {
	_, err := NewConfig(Config{ProjectDir: t.TempDir(), LogFormat: "yaml"})
	assert.Error(t, err)

	_, err = NewConfig(Config{ProjectDir: t.TempDir(), LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewConfigMergesProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[local_server]
url = "http://localhost:5984"

[defaults]
board = "uno"
categories = ["sensors"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := NewConfig(Config{ProjectDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5984", cfg.LocalServerURL)
	assert.Equal(t, "uno", cfg.Board)
	assert.Equal(t, []string{"sensors"}, cfg.Categories)
}

func TestNewConfigFlagsWinOverProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[defaults]
board = "uno"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := NewConfig(Config{ProjectDir: dir, Board: "teensy31"})
	require.NoError(t, err)
	assert.Equal(t, "teensy31", cfg.Board)
}
