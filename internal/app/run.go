package app

import (
	"context"
	"fmt"

	"github.com/vk/firmgen/internal/codegen"
	"github.com/vk/firmgen/internal/docstore"
	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/plugin"
	"github.com/vk/firmgen/internal/project"
	"github.com/vk/firmgen/internal/registry"
	"github.com/vk/firmgen/internal/source"
	"github.com/vk/firmgen/internal/synth"
	"github.com/vk/firmgen/internal/toolchain"
)

// RunBuild generates code for the project and compiles it. The pipeline is
// one pure pass - registry load, synthesis, filter, plugins, generation -
// followed by the side-effecting collaborator steps. Any pipeline failure
// aborts before a single dependency is installed or byte written.
func (a *App) RunBuild(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	cfg := a.config

	proj, err := project.New(cfg.ProjectDir)
	if err != nil {
		return err
	}
	if !proj.IsInitialized() {
		return fmt.Errorf("not a firmware project: no %s in %s (run 'firmgen init' first)",
			project.ToolchainConfigName, proj.Dir)
	}

	var store *docstore.Client
	if cfg.LocalServerURL != "" {
		store = docstore.New(cfg.LocalServerURL)
		defer store.Close()
	}

	// The local lib tree comes last so project-local working modules
	// override definitions from the server.
	var typeSources []source.TypeSource
	if store != nil {
		typeSources = append(typeSources, &source.RemoteTypes{Client: store})
	}
	typeSources = append(typeSources, &source.LocalTree{Root: proj.LibDir()})

	types, err := registry.Load(ctx, typeSources...)
	if err != nil {
		return err
	}

	instances, err := a.loadInstances(ctx, store)
	if err != nil {
		return err
	}

	resolved, err := synth.Synthesize(instances, types)
	if err != nil {
		return err
	}
	filtered := synth.Filter(resolved, cfg.Categories)

	plugins, err := plugin.BuildPipeline(cfg.Plugins, filtered)
	if err != nil {
		return err
	}

	text, closure, err := codegen.Generate(filtered, plugins, cfg.StatusUpdateInterval)
	if err != nil {
		return err
	}
	a.logger.Info("Source generated.",
		"modules", filtered.Len(), "pio_deps", len(closure.Pio), "git_deps", len(closure.Git))

	pio := &toolchain.PIO{Dir: proj.Dir}
	for _, dep := range closure.Pio {
		if err := pio.InstallLib(ctx, dep); err != nil {
			return err
		}
	}
	for _, url := range closure.Git {
		if err := toolchain.FetchGit(ctx, proj.LibDir(), url, codegen.GitFolderName(url)); err != nil {
			return err
		}
	}

	if err := proj.WriteSource(text); err != nil {
		return err
	}
	a.logger.Info("Build unit written.", "path", proj.SourcePath())

	return pio.Run(ctx, cfg.Target)
}

// loadInstances picks the instance source: an explicit modules file wins,
// then the remote store, otherwise the project has nothing to build.
func (a *App) loadInstances(ctx context.Context, store *docstore.Client) (*model.InstanceSet, error) {
	switch {
	case a.config.ModulesFile != "":
		src := &source.InstanceFile{Path: a.config.ModulesFile}
		return src.Instances(ctx)
	case store != nil:
		src := &source.RemoteInstances{Client: store}
		return src.Instances(ctx)
	default:
		return nil, fmt.Errorf("no modules specified for the project: pass --modules-file or configure a local server")
	}
}
