package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/repositories"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/urfave/cli/v3"
)

// LibrarySave stores the selected profile in the library.
//
// Pinned candidates and margins are not stored; they are chosen again at display time.
func (r *Runner) LibrarySave(ctx context.Context, cmd *cli.Command) error {
	export, err := r.resolveInput(ctx, cmd)
	if err != nil {
		return err
	}

	name := cmd.String("name")
	if name == "" {
		name = export.Name
	}
	description := cmd.String("description")
	if description == "" {
		description = export.Description
	}

	db, err := r.openLibrary()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewProfileRepository(db)

	existing, err := repo.GetByName(name)
	switch {
	case err == nil && !cmd.Bool("force"):
		return fmt.Errorf("%w: profile %q (use --force to replace)", shared.ErrAlreadyExists, name)
	case err == nil:
		existing.SetArgs(export.Args)
		existing.SetDescription(description)
		if err := repo.Update(existing); err != nil {
			return err
		}
		r.logger.Info("profile replaced", "name", name, "id", existing.ID())
		return r.writePlain("✓ Replaced %s (#%d)\n", name, existing.Sequence())
	case !errors.Is(err, shared.ErrNotFound):
		return err
	}

	profile := models.NewPersistedProfile(0, name, description, export.Args)
	if err := repo.Create(profile); err != nil {
		return err
	}

	r.logger.Info("profile saved", "name", name, "id", profile.ID())
	return r.writePlain("✓ Saved %s (#%d)\n", name, profile.Sequence())
}

// LibraryList prints saved profiles in sequence order.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openLibrary()
	if err != nil {
		return err
	}
	defer db.Close()

	criteria := map[string]any{
		"name_like": cmd.String("match"),
		"num_cands": cmd.Int("cands"),
		"limit":     cmd.Int("limit"),
	}

	profiles, err := repositories.NewProfileRepository(db).List(criteria)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		type entry struct {
			ID          string             `json:"id"`
			Sequence    int                `json:"sequence"`
			Name        string             `json:"name"`
			Description string             `json:"description,omitempty"`
			Args        models.DisplayArgs `json:"args"`
		}
		entries := make([]entry, 0, len(profiles))
		for _, p := range profiles {
			entries = append(entries, entry{p.ID(), p.Sequence(), p.Name(), p.Description(), p.Args()})
		}
		return r.writeJSON(entries, true)
	}

	if len(profiles) == 0 {
		return r.writePlain("No saved profiles\n")
	}

	var b strings.Builder
	for _, p := range profiles {
		fmt.Fprintf(&b, "#%-4d %-24s %d candidates, %d voters  %s\n",
			p.Sequence(), p.Name(), p.NumCands(), p.NumVoters(), p.Description())
	}
	return r.writePlain("%s", b.String())
}

// LibraryDelete soft-deletes a saved profile by name.
func (r *Runner) LibraryDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: profile name", shared.ErrMissingArgument)
	}

	db, err := r.openLibrary()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewProfileRepository(db)
	profile, err := repo.GetByName(name)
	if err != nil {
		return err
	}
	if err := repo.Delete(profile.ID()); err != nil {
		return err
	}

	r.logger.Info("profile deleted", "name", name, "id", profile.ID())
	return r.writePlain("✓ Deleted %s\n", name)
}
