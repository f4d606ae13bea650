package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/desertthunder/prefview/internal/ui"
	"github.com/desertthunder/prefview/internal/voting"
	"github.com/urfave/cli/v3"
)

// CandidateScores holds one candidate's scores, in candidate order.
type CandidateScores struct {
	Name        string `json:"name"`
	Plurality   int    `json:"plurality"`
	Borda       int    `json:"borda"`
	Copeland    int    `json:"copeland"`
	MinimaxLoss int    `json:"minimax_loss"`
}

// MethodResult is the winning set of one voting method.
type MethodResult struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Winners []string `json:"winners"`
}

// EliminationRound is the profile left after one Instant Runoff or Coombs round.
type EliminationRound struct {
	Round          int                `json:"round"`
	Removed        []string           `json:"removed"`
	MajorityWinner *string            `json:"majority_winner"`
	Profile        models.DisplayArgs `json:"profile"`
}

// Summary is the JSON shape of the summary command.
type Summary struct {
	Name                string             `json:"name"`
	NumCands            int                `json:"num_cands"`
	NumVoters           int                `json:"num_voters"`
	StrictMajority      int                `json:"strict_majority"`
	MajorityWinner      *string            `json:"majority_winner"`
	CondorcetWinner     *string            `json:"condorcet_winner"`
	CondorcetLoser      *string            `json:"condorcet_loser"`
	Candidates          []CandidateScores  `json:"candidates"`
	Methods             []MethodResult     `json:"methods"`
	Margins             [][]int            `json:"margins"`
	InstantRunoffRounds []EliminationRound `json:"instant_runoff_rounds,omitempty"`
	CoombsRounds        []EliminationRound `json:"coombs_rounds,omitempty"`
}

func summarize(name string, a models.DisplayArgs, withRounds bool) (*Summary, error) {
	prof, err := voting.New(a.Prof, a.RankSizes, a.NumCands)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	named := func(c int, ok bool) *string {
		if !ok {
			return nil
		}
		n := a.Name(c)
		return &n
	}
	names := func(cs []int) []string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = a.Name(c)
		}
		return out
	}

	plurality, borda := prof.PluralityScores(), prof.BordaScores()
	copeland, minimax := prof.CopelandScores(), prof.MinimaxLosses()
	candidates := make([]CandidateScores, a.NumCands)
	for c := range candidates {
		candidates[c] = CandidateScores{
			Name:        a.Name(c),
			Plurality:   plurality[c],
			Borda:       borda[c],
			Copeland:    copeland[c],
			MinimaxLoss: minimax[c],
		}
	}

	methods := make([]MethodResult, len(voting.Methods))
	for i, m := range voting.Methods {
		methods[i] = MethodResult{Key: m.Key, Name: m.Name, Winners: names(m.Winners(prof))}
	}

	s := &Summary{
		Name:            name,
		NumCands:        a.NumCands,
		NumVoters:       prof.NumVoters(),
		StrictMajority:  prof.StrictMajority(),
		MajorityWinner:  named(prof.MajorityWinner()),
		CondorcetWinner: named(prof.CondorcetWinner()),
		CondorcetLoser:  named(prof.CondorcetLoser()),
		Candidates:      candidates,
		Methods:         methods,
		Margins:         prof.MarginMatrix(),
	}

	if withRounds {
		s.InstantRunoffRounds = eliminationRounds(prof.InstantRunoff(), names)
		s.CoombsRounds = eliminationRounds(prof.Coombs(), names)
	}
	return s, nil
}

// eliminationRounds converts rounds into display arguments named after the original candidates.
func eliminationRounds(e voting.Elimination, names func([]int) []string) []EliminationRound {
	rounds := make([]EliminationRound, len(e.Rounds))
	for i, round := range e.Rounds {
		remaining := names(round.Remaining)
		var winner *string
		if w, ok := round.Profile.MajorityWinner(); ok {
			winner = &remaining[w]
		}
		rounds[i] = EliminationRound{
			Round:          i + 1,
			Removed:        names(round.Removed),
			MajorityWinner: winner,
			Profile:        models.NewDisplayArgs(round.Profile.Rankings, round.Profile.Counts, remaining),
		}
	}
	return rounds
}

// Summary prints the election results of the selected profile.
func (r *Runner) Summary(ctx context.Context, cmd *cli.Command) error {
	export, err := r.resolveInput(ctx, cmd)
	if err != nil {
		return err
	}

	withRounds := cmd.Bool("rounds")
	s, err := summarize(export.Name, export.Args, withRounds)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(s, cmd.Bool("pretty"))
	}

	orNone := func(p *string) string {
		if p == nil {
			return "none"
		}
		return *p
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Candidates:       %d\n", s.NumCands)
	fmt.Fprintf(&b, "Voters:           %d (strict majority %d)\n", s.NumVoters, s.StrictMajority)
	fmt.Fprintf(&b, "Majority winner:  %s\n", orNone(s.MajorityWinner))
	fmt.Fprintf(&b, "Condorcet winner: %s\n", orNone(s.CondorcetWinner))
	fmt.Fprintf(&b, "Condorcet loser:  %s\n", orNone(s.CondorcetLoser))

	b.WriteString("\nScores\n")
	for _, c := range s.Candidates {
		fmt.Fprintf(&b, "  %-12s plurality %3d   borda %3d   copeland %3d   minimax loss %3d\n",
			c.Name, c.Plurality, c.Borda, c.Copeland, c.MinimaxLoss)
	}

	b.WriteString("\nWinners\n")
	for _, m := range s.Methods {
		fmt.Fprintf(&b, "  %-22s %s\n", m.Name+":", strings.Join(m.Winners, ", "))
	}

	if withRounds {
		palette := ui.NewPalette(lipgloss.NewRenderer(r.output), r.config.Theme)
		for _, section := range []struct {
			title  string
			rounds []EliminationRound
		}{
			{"Instant Runoff rounds", s.InstantRunoffRounds},
			{"Coombs rounds", s.CoombsRounds},
		} {
			if err := r.describeRounds(&b, section.title, section.rounds, palette); err != nil {
				return err
			}
		}
	}

	if err := r.writePlainHeader(s.Name); err != nil {
		return err
	}
	return r.writePlain("%s", b.String())
}

func (r *Runner) describeRounds(b *strings.Builder, title string, rounds []EliminationRound, palette *ui.Palette) error {
	fmt.Fprintf(b, "\n%s\n", title)
	if len(rounds) == 0 {
		b.WriteString("  no eliminations\n")
		return nil
	}

	for _, round := range rounds {
		w, err := ui.NewWidget(round.Profile, ui.Options{
			Gap:          r.config.Display.Gap,
			MaxNameWidth: r.config.Display.MaxNameWidth,
			Palette:      palette,
		})
		if err != nil {
			return err
		}

		winner := "none"
		if round.MajorityWinner != nil {
			winner = *round.MajorityWinner
		}
		fmt.Fprintf(b, "\nRound %d: removed %s\n\n", round.Round, strings.Join(round.Removed, ", "))
		fmt.Fprintf(b, "%s\n\n", w.View())
		fmt.Fprintf(b, "Majority winner in the reduced profile: %s\n", winner)
	}
	return nil
}

// Presets lists the built-in profiles.
func (r *Runner) Presets(ctx context.Context, cmd *cli.Command) error {
	type entry struct {
		Key       string `json:"key"`
		Name      string `json:"name"`
		NumCands  int    `json:"num_cands"`
		NumVoters int    `json:"num_voters"`
	}

	entries := []entry{}
	for _, key := range voting.PresetKeys() {
		p, _ := voting.LookupPreset(key)
		prof := p.Profile()
		entries = append(entries, entry{Key: key, Name: p.Name, NumCands: prof.NumCands, NumVoters: prof.NumVoters()})
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, true)
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-24s %-36s %d candidates, %d voters\n", e.Key, e.Name, e.NumCands, e.NumVoters)
	}
	return r.writePlain("%s", b.String())
}
