package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vk/firmgen/internal/ctxlog"
)

// FetchGit makes a source-control dependency available under
// libDir/folderName: an existing checkout is updated in place, anything else
// is freshly cloned.
func FetchGit(ctx context.Context, libDir, url, folderName string) error {
	logger := ctxlog.FromContext(ctx)
	folder := filepath.Join(libDir, folderName)

	if info, err := os.Stat(folder); err == nil && info.IsDir() {
		logger.Info("Updating source dependency.", "folder", folderName)
		cmd := exec.CommandContext(ctx, "git", "pull")
		cmd.Dir = folder
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("failed to update %q: %w", folderName, err)
		}
		return nil
	}

	if err := os.MkdirAll(libDir, 0o755); err != nil {
		return err
	}
	logger.Info("Downloading source dependency.", "folder", folderName, "url", url)
	cmd := exec.CommandContext(ctx, "git", "clone", url)
	cmd.Dir = libDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to clone %q: %w", url, err)
	}
	return nil
}
