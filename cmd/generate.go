package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/desertthunder/prefview/internal/voting"
	"github.com/urfave/cli/v3"
)

// Generate draws a random profile and writes it as an argument file.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	cands, voters, seed := cmd.Int("cands"), cmd.Int("voters"), cmd.Uint64("seed")
	output := cmd.String("output")

	prof, err := voting.Generate(cands, voters, voting.NewRand(seed))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	args := models.NewDisplayArgs(prof.Rankings, prof.Counts, voting.LetterNames(cands))
	if cmd.Bool("margins") {
		args.MarginMatrix = prof.MarginMatrix()
	}

	r.logger.Debug("generated profile", "cands", cands, "voters", voters, "rankings", len(prof.Rankings))

	if output == "" {
		return r.writeJSON(args, true)
	}

	format, err := models.FormatFromPath(output)
	if err != nil {
		return err
	}

	data, err := encodeArgs(args, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	return r.writePlain("✓ Wrote %d voters in %d rankings to %s\n", voters, len(prof.Rankings), output)
}

func encodeArgs(args models.DisplayArgs, format models.ArgsFormat) ([]byte, error) {
	switch format {
	case models.FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(args); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := shared.MarshalJSON(args, true)
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
}
