package app

import (
	"context"

	"github.com/vk/firmgen/internal/boards"
	"github.com/vk/firmgen/internal/project"
	"github.com/vk/firmgen/internal/toolchain"
)

// InitProject initializes a new firmware project: a toolchain project for
// the configured board plus an empty modules file.
func (a *App) InitProject(ctx context.Context) error {
	ctx = a.withLogger(ctx)

	if err := boards.Validate(a.config.Board); err != nil {
		return err
	}

	proj, err := project.New(a.config.ProjectDir)
	if err != nil {
		return err
	}

	pio := &toolchain.PIO{Dir: proj.Dir}
	if err := pio.Init(ctx, a.config.Board); err != nil {
		return err
	}

	if err := proj.WriteModulesFile(map[string]any{}); err != nil {
		return err
	}

	a.logger.Info("Firmware project initialized.", "dir", proj.Dir, "board", a.config.Board)
	return nil
}
