package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/prefview/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	app := newApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "prefview",
		Usage:    "Display ranked-ballot profiles and their margins in the terminal",
		Version:  "0.1.0",
		Flags:    globalFlags(),
		Before:   r.loadConfig,
		Commands: r.register(),
		Writer:   r.output,
	}
}
