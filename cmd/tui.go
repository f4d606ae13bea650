package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/desertthunder/prefview/internal/ui"
	"github.com/urfave/cli/v3"
)

// Show launches the interactive widget for the selected profile.
//
// Each click value is logged as it arrives and the final value is printed after the program exits.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	export, err := r.resolveInput(ctx, cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, logFile, err := shared.NewFileLogger(r.config.Log.TUIFile)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer logFile.Close()
	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	logger := shared.WithLogger(fileLogger, "profile", export.Name)

	value := 0
	widget, err := ui.NewWidget(export.Args, ui.Options{
		Gap:          r.config.Display.Gap,
		MaxNameWidth: r.config.Display.MaxNameWidth,
		Palette:      ui.NewPalette(nil, r.config.Theme),
		OnValue: func(v int) {
			value = v
			logger.Info("component value", "value", v)
		},
	})
	if err != nil {
		return err
	}

	title := cmd.String("title")
	if title == "" {
		title = export.Name
	}
	showHelp := r.config.Display.ShowHelp && !cmd.Bool("no-help")

	logger.Info("starting widget", "cands", export.Args.NumCands, "voters", export.Args.NumVoters())
	if err := r.runTUI(ui.NewModel(widget, title, showHelp, logger)); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return r.writePlain("value: %d\n", value)
}

// Render prints the widget once. Colors follow the output's terminal profile.
func (r *Runner) Render(ctx context.Context, cmd *cli.Command) error {
	export, err := r.resolveInput(ctx, cmd)
	if err != nil {
		return err
	}

	widget, err := ui.NewWidget(export.Args, ui.Options{
		Gap:          r.config.Display.Gap,
		MaxNameWidth: r.config.Display.MaxNameWidth,
		Palette:      ui.NewPalette(lipgloss.NewRenderer(r.output), r.config.Theme),
	})
	if err != nil {
		return err
	}

	return r.writePlain("%s\n\n%s\n", export.Name, widget.View())
}
