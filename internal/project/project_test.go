package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInitialized(t *testing.T) {
	dir := t.TempDir()
	proj, err := New(dir)
	require.NoError(t, err)

	assert.False(t, proj.IsInitialized())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ToolchainConfigName), []byte("[env]\n"), 0o644))
	assert.True(t, proj.IsInitialized())
}

func TestWriteSourceCreatesDirAndReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	proj, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, proj.WriteSource("// first\n"))
	require.NoError(t, proj.WriteSource("// second\n"))

	data, err := os.ReadFile(proj.SourcePath())
	require.NoError(t, err)
	assert.Equal(t, "// second\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(dir, SrcDirName))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SourceFileName, entries[0].Name())
}

func TestWriteModulesFile(t *testing.T) {
	dir := t.TempDir()
	proj, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, proj.WriteModulesFile(map[string]any{
		"t1": map[string]any{"type": "temp_sensor", "arguments": []any{7}},
	}))

	data, err := os.ReadFile(proj.ModulesPath())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "t1")
}

func TestLinkModuleSources(t *testing.T) {
	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "sensor.cpp"), []byte("// src"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, ".hidden"), []byte(""), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(moduleDir, "subdir"), 0o755))

	projDir := t.TempDir()
	proj, err := New(projDir)
	require.NoError(t, err)

	require.NoError(t, proj.LinkModuleSources(moduleDir, "module"))

	linked := filepath.Join(proj.LibDir(), "module")
	entries, err := os.ReadDir(linked)
	require.NoError(t, err)
	require.Len(t, entries, 1, "dotfiles and directories are not linked")
	assert.Equal(t, "sensor.cpp", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(linked, "sensor.cpp"))
	require.NoError(t, err)
	assert.Equal(t, "// src", string(data))
}
