// Package toolchain invokes the external build toolchain and dependency
// fetch commands. Nothing here has algorithmic weight; it exists to keep
// subprocess plumbing out of the pipeline core.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vk/firmgen/internal/ctxlog"
)

const pioCommand = "platformio"

// PIO drives the PlatformIO CLI for one project directory.
type PIO struct {
	Dir string
}

// Init initializes a PlatformIO project for the given board. The confirm
// prompt PlatformIO may show is auto-answered.
func (p *PIO) Init(ctx context.Context, board string) error {
	ctxlog.FromContext(ctx).Info("Initializing PlatformIO project.", "board", board, "dir", p.Dir)

	cmd := exec.CommandContext(ctx, pioCommand, "init", "-b", board)
	cmd.Dir = p.Dir
	cmd.Stdin = strings.NewReader("y\n")
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("PlatformIO is not installed")
		}
		return fmt.Errorf("failed to initialize PlatformIO project: %w", err)
	}
	return nil
}

// InstallLib hands one registry-style dependency to the package installer.
func (p *PIO) InstallLib(ctx context.Context, spec string) error {
	ctxlog.FromContext(ctx).Info("Installing library.", "spec", spec)

	cmd := exec.CommandContext(ctx, pioCommand, "lib", "install", spec)
	cmd.Dir = p.Dir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to install library %q: %w", spec, err)
	}
	return nil
}

// Run compiles the project, optionally with a specific target such as
// "upload".
func (p *PIO) Run(ctx context.Context, target string) error {
	args := []string{"run"}
	if target != "" {
		args = append(args, "-t", target)
	}
	ctxlog.FromContext(ctx).Info("Running PlatformIO build.", "target", target)

	cmd := exec.CommandContext(ctx, pioCommand, args...)
	cmd.Dir = p.Dir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	return nil
}
