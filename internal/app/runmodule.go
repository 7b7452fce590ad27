package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/firmgen/internal/loader"
	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/project"
	"github.com/vk/firmgen/internal/synth"
)

// moduleInstanceID is the id a single working module is built under.
const moduleInstanceID = "module"

// RunModule builds and runs a single working module from its source
// directory: the module's own descriptor becomes the only type in play, the
// command-line arguments become the instance arguments, and the build runs
// in a scratch project under _build.
func (a *App) RunModule(ctx context.Context, args []string) error {
	ctx = a.withLogger(ctx)
	cfg := a.config

	moduleDir, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		return err
	}
	descriptorPath := filepath.Join(moduleDir, "module.json")
	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no module.json file found in %s", moduleDir)
		}
		return err
	}
	moduleType, err := loader.ParseTypeJSON(moduleInstanceID, data)
	if err != nil {
		return err
	}

	// Coerce the CLI arguments through the same synthesis path a real
	// project would take, so mismatches carry the same error taxonomy.
	rawArgs := make([]cty.Value, len(args))
	for i, arg := range args {
		rawArgs[i] = cty.StringVal(arg)
	}
	instances := model.NewInstanceSet()
	instances.Put(&model.ModuleInstance{
		ID:        moduleInstanceID,
		Type:      moduleInstanceID,
		Arguments: rawArgs,
	})
	resolved, err := synth.Synthesize(instances, map[string]*model.ModuleType{
		moduleInstanceID: moduleType,
	})
	if err != nil {
		return err
	}

	buildDir := filepath.Join(moduleDir, project.BuildDirName)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return err
	}

	buildCfg := *cfg
	buildCfg.ProjectDir = buildDir
	buildCfg.ModulesFile = filepath.Join(buildDir, project.ModulesFileName)
	buildApp := New(a.outW, &buildCfg)

	if err := buildApp.InitProject(ctx); err != nil {
		return err
	}

	proj, err := project.New(buildDir)
	if err != nil {
		return err
	}
	if err := proj.LinkModuleSources(moduleDir, moduleInstanceID); err != nil {
		return err
	}

	mod := resolved.Get(moduleInstanceID)
	jsonArgs := make([]any, len(mod.Arguments))
	for i, val := range mod.Arguments {
		jsonArgs[i] = ctyToJSONValue(val, mod.ArgSpecs[i].Type)
	}
	doc := map[string]any{
		moduleInstanceID: map[string]any{
			"type":      moduleInstanceID,
			"arguments": jsonArgs,
		},
	}
	if err := proj.WriteModulesFile(doc); err != nil {
		return err
	}

	return buildApp.RunBuild(ctx)
}

// ctyToJSONValue renders a coerced argument value as its natural JSON type.
func ctyToJSONValue(val cty.Value, t model.ArgType) any {
	switch t {
	case model.ArgInt:
		n, _ := val.AsBigFloat().Int64()
		return n
	case model.ArgFloat:
		f, _ := val.AsBigFloat().Float64()
		return f
	case model.ArgBool:
		return val.True()
	default:
		return val.AsString()
	}
}
