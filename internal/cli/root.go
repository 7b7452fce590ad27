// Package cli defines the command surface of firmgen. It is a thin layer:
// flags become an app.Config, typed pipeline errors map to exit codes.
package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"
)

// ExitError carries a specific process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// flags shared by the code-generating commands.
type codegenFlags struct {
	projectDir           string
	categories           []string
	modulesFile          string
	plugins              []string
	target               string
	statusUpdateInterval time.Duration
	localServer          string
}

func (f *codegenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.projectDir, "project-dir", "d", ".", "directory in which the project resides")
	cmd.Flags().StringSliceVarP(&f.categories, "categories", "c", nil,
		"categories of inputs and outputs to enable (sensors, actuators, calibration)")
	cmd.Flags().StringVarP(&f.modulesFile, "modules-file", "f", "",
		"JSON or HCL file describing the modules to include in the generated code")
	cmd.Flags().StringSliceVarP(&f.plugins, "plugin", "p", nil, "enable a specific code generation plugin")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "toolchain target (e.g. upload)")
	cmd.Flags().DurationVar(&f.statusUpdateInterval, "status-update-interval", 5*time.Second,
		"minimum interval between driver status updates")
	cmd.Flags().StringVar(&f.localServer, "local-server", "", "URL of the module definition store")
}

var (
	logFormat string
	logLevel  string
)

// NewRootCommand assembles the firmgen command tree writing to outW.
func NewRootCommand(outW io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "firmgen",
		Short:         "Scaffold and build embedded-device firmware projects from reusable module definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: 'text' or 'json'")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logging level: 'debug', 'info', 'warn' or 'error'")

	root.AddCommand(newInitCommand(outW))
	root.AddCommand(newRunCommand(outW))
	root.AddCommand(newRunModuleCommand(outW))
	return root
}
