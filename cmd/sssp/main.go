package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/sssp/internal/app"
	"github.com/katalvlaran/sssp/internal/cli"
)

// main is the entrypoint for the sssp command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches to the solve or gen command. Reports go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	if len(args) > 0 && args[0] == "gen" {
		genConfig, shouldExit, err := cli.ParseGen(args[1:], outW)
		if err != nil || shouldExit {
			return err
		}
		return app.Generate(ctx, outW, logW, genConfig)
	}

	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil || shouldExit {
		return err
	}

	return app.New(outW, logW, cfg).Run(ctx)
}
