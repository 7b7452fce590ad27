// Package fsutil provides file system helpers shared by the loaders.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
)

// FindDescriptorDirs returns the immediate subdirectories of root that
// contain a file with one of the given names, sorted by directory name.
// Each hit is reported as (dirName, descriptorPath).
func FindDescriptorDirs(root string, names ...string) (map[string]string, []string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, err
	}

	found := make(map[string]string)
	var order []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, name := range names {
			candidate := filepath.Join(root, entry.Name(), name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				found[entry.Name()] = candidate
				order = append(order, entry.Name())
				break
			}
		}
	}
	sort.Strings(order)

	return found, order, nil
}
