// Package project owns the layout of a firmware project directory and the
// file writes performed at the end of a build run.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known files and directories inside a project.
const (
	ToolchainConfigName = "platformio.ini"
	ModulesFileName     = "modules.json"
	LibDirName          = "lib"
	SrcDirName          = "src"
	SourceFileName      = "src.ino"
	BuildDirName        = "_build"
)

// Project is a firmware project rooted at Dir.
type Project struct {
	Dir string
}

// New returns a project for the given directory, resolved to an absolute
// path.
func New(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Project{Dir: abs}, nil
}

// LibDir returns the directory holding working modules and fetched
// source-control dependencies.
func (p *Project) LibDir() string {
	return filepath.Join(p.Dir, LibDirName)
}

// SourcePath returns the project-relative path of the generated build unit.
func (p *Project) SourcePath() string {
	return filepath.Join(p.Dir, SrcDirName, SourceFileName)
}

// ModulesPath returns the path of the project's modules.json file.
func (p *Project) ModulesPath() string {
	return filepath.Join(p.Dir, ModulesFileName)
}

// IsInitialized reports whether the external toolchain's project file is
// present, which is the marker for an initialized firmware project.
func (p *Project) IsInitialized() bool {
	info, err := os.Stat(filepath.Join(p.Dir, ToolchainConfigName))
	return err == nil && info.Mode().IsRegular()
}

// WriteSource atomically replaces the generated build unit. The text is
// written to a temp file in the destination directory and renamed into
// place; a half-written build unit is worse than a missing one.
func (p *Project) WriteSource(text string) error {
	return WriteFileAtomic(p.SourcePath(), []byte(text))
}

// WriteModulesFile serialises a modules document to modules.json.
func (p *Project) WriteModulesFile(doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(p.ModulesPath(), append(data, '\n'))
}

// WriteFileAtomic writes data to path via a temp file and rename. The parent
// directory is created if needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// LinkModuleSources symlinks the regular files of moduleDir into the
// project's lib/<linkName> directory so a single working module can be built
// in place without copying.
func (p *Project) LinkModuleSources(moduleDir, linkName string) error {
	targetDir := filepath.Join(p.LibDir(), linkName)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(moduleDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		src := filepath.Join(moduleDir, entry.Name())
		link := filepath.Join(targetDir, entry.Name())
		if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
			return err
		}
		if err := os.Symlink(src, link); err != nil {
			return fmt.Errorf("linking %s: %w", entry.Name(), err)
		}
	}
	return nil
}
