package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/firmgen/internal/cli"
)

func main() {
	// Minimal logger until the per-invocation one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run keeps the real logic testable and out of main.
func run(outW io.Writer, args []string) error {
	root := cli.NewRootCommand(outW)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
