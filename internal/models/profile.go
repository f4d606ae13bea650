package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/prefview/internal/shared"
)

// PersistedProfile is a named profile saved in the library.
//
// Only the profile itself is stored. Pinned candidates and margins are chosen at display time.
type PersistedProfile struct {
	id          string
	sequence    int
	name        string
	description string
	args        DisplayArgs
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

var _ Model = (*PersistedProfile)(nil)

// NewPersistedProfile creates an unsaved profile. Pinned selectors and margins are stripped from args.
func NewPersistedProfile(sequence int, name, description string, args DisplayArgs) *PersistedProfile {
	now := time.Now()
	stored := NewDisplayArgs(args.Prof, args.RankSizes, args.CandNames)
	stored.NumCands = args.NumCands
	return &PersistedProfile{
		sequence:    sequence,
		name:        strings.TrimSpace(name),
		description: description,
		args:        stored,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (p *PersistedProfile) ID() string            { return p.id }
func (p *PersistedProfile) Sequence() int         { return p.sequence }
func (p *PersistedProfile) Name() string          { return p.name }
func (p *PersistedProfile) Description() string   { return p.description }
func (p *PersistedProfile) Args() DisplayArgs     { return p.args }
func (p *PersistedProfile) CreatedAt() time.Time  { return p.createdAt }
func (p *PersistedProfile) UpdatedAt() time.Time  { return p.updatedAt }
func (p *PersistedProfile) DeletedAt() *time.Time { return p.deletedAt }

func (p *PersistedProfile) SetID(id string)           { p.id = id }
func (p *PersistedProfile) SetSequence(seq int)       { p.sequence = seq }
func (p *PersistedProfile) SetDescription(d string)   { p.description = d }
func (p *PersistedProfile) SetCreatedAt(t time.Time)  { p.createdAt = t }
func (p *PersistedProfile) SetUpdatedAt(t time.Time)  { p.updatedAt = t }
func (p *PersistedProfile) SetDeletedAt(t *time.Time) { p.deletedAt = t }
func (p *PersistedProfile) SetName(name string)       { p.name = strings.TrimSpace(name) }
func (p *PersistedProfile) SetArgs(args DisplayArgs)  { p.args = NewPersistedProfile(0, "", "", args).args }
func (p *PersistedProfile) IsDeleted() bool           { return p.deletedAt != nil }
func (p *PersistedProfile) NumVoters() int            { return p.args.NumVoters() }
func (p *PersistedProfile) NumCands() int             { return p.args.NumCands }

// Validate checks the name and the stored profile.
func (p *PersistedProfile) Validate() error {
	if p.name == "" {
		return fmt.Errorf("%w: profile name is required", shared.ErrInvalidInput)
	}
	if err := p.args.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.name, err)
	}
	return nil
}
