package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertthunder/prefview/internal/formatter"
	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/repositories"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/desertthunder/prefview/internal/voting"
	"github.com/urfave/cli/v3"
)

// resolveInput builds the named argument record selected by --file, --preset or --library,
// then applies --c1, --c2 and --margins.
func (r *Runner) resolveInput(ctx context.Context, cmd *cli.Command) (*formatter.Export, error) {
	sources := []string{}
	for _, name := range []string{"file", "preset", "library"} {
		if cmd.String(name) != "" {
			sources = append(sources, "--"+name)
		}
	}
	switch len(sources) {
	case 0:
		return nil, fmt.Errorf("%w: one of --file, --preset or --library is required", shared.ErrMissingArgument)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %s are mutually exclusive", shared.ErrInvalidArgument, strings.Join(sources, ", "))
	}

	var (
		export *formatter.Export
		err    error
	)
	switch {
	case cmd.String("file") != "":
		export, err = loadFile(cmd.String("file"))
	case cmd.String("preset") != "":
		export, err = loadPreset(cmd.String("preset"))
	default:
		export, err = r.loadLibrary(cmd.String("library"))
	}
	if err != nil {
		return nil, err
	}

	a := &export.Args
	if cmd.IsSet("c1") {
		a.C1 = cmd.Int("c1")
	}
	if cmd.IsSet("c2") {
		a.C2 = cmd.Int("c2")
	}

	if (cmd.Bool("margins") || r.config.Display.DefaultMargins) && !a.HasMargins() {
		prof, err := voting.New(a.Prof, a.RankSizes, a.NumCands)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
		a.MarginMatrix = prof.MarginMatrix()
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	r.logger.Debug("resolved input", "name", export.Name, "cands", a.NumCands, "voters", a.NumVoters(), "margins", a.HasMargins())
	return export, nil
}

func loadFile(path string) (*formatter.Export, error) {
	args, err := models.LoadArgs(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &formatter.Export{Name: name, Args: args}, nil
}

func loadPreset(key string) (*formatter.Export, error) {
	p, ok := voting.LookupPreset(key)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (available: %s)",
			shared.ErrInvalidArgument, key, strings.Join(voting.PresetKeys(), ", "))
	}
	args := models.NewDisplayArgs(p.Rankings, p.Counts, voting.LetterNames(len(p.Rankings[0])))
	return &formatter.Export{Name: p.Name, Args: args}, nil
}

func (r *Runner) loadLibrary(name string) (*formatter.Export, error) {
	db, err := r.openLibrary()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	profile, err := repositories.NewProfileRepository(db).GetByName(name)
	if err != nil {
		return nil, err
	}
	return &formatter.Export{Name: profile.Name(), Description: profile.Description(), Args: profile.Args()}, nil
}
