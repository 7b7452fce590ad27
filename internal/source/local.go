package source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/firmgen/internal/ctxlog"
	"github.com/vk/firmgen/internal/fsutil"
	"github.com/vk/firmgen/internal/loader"
	"github.com/vk/firmgen/internal/model"
)

// Descriptor file names recognised inside a lib subdirectory. JSON is
// checked first so projects carrying both keep their original behavior.
var descriptorNames = []string{"module.json", "module.hcl"}

// LocalTree loads module types from a project's lib directory. Each
// immediate subdirectory containing a descriptor file contributes one type
// keyed by the directory name.
type LocalTree struct {
	Root string
}

// Name implements TypeSource.
func (s *LocalTree) Name() string {
	return "lib:" + s.Root
}

// EachType implements TypeSource. A missing lib directory yields no types;
// projects without working modules are legal.
func (s *LocalTree) EachType(ctx context.Context, fn func(t *model.ModuleType) error) error {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(s.Root); os.IsNotExist(err) {
		logger.Debug("Lib directory does not exist, skipping local types.", "path", s.Root)
		return nil
	}

	paths, order, err := fsutil.FindDescriptorDirs(s.Root, descriptorNames...)
	if err != nil {
		return err
	}

	for _, dirName := range order {
		descriptorPath := paths[dirName]
		logger.Info("Parsing firmware module type from lib folder.", "id", dirName)

		var t *model.ModuleType
		if filepath.Ext(descriptorPath) == ".hcl" {
			t, err = loader.ParseTypeHCLFile(dirName, descriptorPath)
		} else {
			var data []byte
			data, err = os.ReadFile(descriptorPath)
			if err == nil {
				t, err = loader.ParseTypeJSON(dirName, data)
			}
		}
		if err != nil {
			return err
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

// InstanceFile loads module instances from a single modules.json or
// modules.hcl document.
type InstanceFile struct {
	Path string
}

// Name implements InstanceSource.
func (s *InstanceFile) Name() string {
	return "file:" + s.Path
}

// Instances implements InstanceSource.
func (s *InstanceFile) Instances(ctx context.Context) (*model.InstanceSet, error) {
	if filepath.Ext(s.Path) == ".hcl" {
		return loader.ParseInstancesHCLFile(s.Path)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return loader.ParseInstancesJSON(data)
}
