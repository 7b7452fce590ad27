package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/firmgen/internal/app"
	"github.com/vk/firmgen/internal/boards"
)

func newInitCommand(outW io.Writer) *cobra.Command {
	var (
		board      string
		projectDir string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new firmware project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				ProjectDir: projectDir,
				Board:      board,
				LogFormat:  logFormat,
				LogLevel:   logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return app.New(outW, cfg).InitProject(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&board, "board", "b", boards.DefaultBoard,
		"board to use for compilation")
	cmd.Flags().StringVarP(&projectDir, "project-dir", "d", ".",
		"directory in which the project should reside")
	return cmd
}

func newRunCommand(outW io.Writer) *cobra.Command {
	var flags codegenFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate code for this project and build it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				ProjectDir:           flags.projectDir,
				Categories:           flags.categories,
				ModulesFile:          flags.modulesFile,
				Plugins:              flags.plugins,
				Target:               flags.target,
				StatusUpdateInterval: flags.statusUpdateInterval,
				LocalServerURL:       flags.localServer,
				LogFormat:            logFormat,
				LogLevel:             logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return app.New(outW, cfg).RunBuild(cmd.Context())
		},
	}
	flags.register(cmd)
	return cmd
}

func newRunModuleCommand(outW io.Writer) *cobra.Command {
	var (
		flags codegenFlags
		board string
	)
	cmd := &cobra.Command{
		Use:   "run-module [arguments...]",
		Short: "Build and run a single instance of the module in this directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				ProjectDir:           flags.projectDir,
				Board:                board,
				Categories:           flags.categories,
				Plugins:              flags.plugins,
				Target:               flags.target,
				StatusUpdateInterval: flags.statusUpdateInterval,
				LocalServerURL:       flags.localServer,
				LogFormat:            logFormat,
				LogLevel:             logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return app.New(outW, cfg).RunModule(cmd.Context(), args)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&board, "board", "b", boards.DefaultBoard,
		"board to use for compilation")
	return cmd
}
