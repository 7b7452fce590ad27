package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDescriptorDirs(t *testing.T) {
	root := t.TempDir()
	makeDir := func(name, file string) {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if file != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, file), nil, 0o644))
		}
	}
	makeDir("zebra", "module.json")
	makeDir("alpha", "module.hcl")
	makeDir("empty", "")
	// Stray files at the root level are not descriptor directories.
	require.NoError(t, os.WriteFile(filepath.Join(root, "module.json"), nil, 0o644))

	paths, order, err := FindDescriptorDirs(root, "module.json", "module.hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zebra"}, order)
	assert.Equal(t, filepath.Join(root, "alpha", "module.hcl"), paths["alpha"])
	assert.Equal(t, filepath.Join(root, "zebra", "module.json"), paths["zebra"])
}

func TestFindDescriptorDirsPrefersFirstName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "both")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "module.json"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "module.hcl"), nil, 0o644))

	paths, _, err := FindDescriptorDirs(root, "module.json", "module.hcl")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "module.json"), paths["both"])
}
