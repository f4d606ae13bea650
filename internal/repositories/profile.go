package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/shared"
)

const profileColumns = `id, sequence, name, description, num_cands, cand_names, rankings, rank_sizes, created_at, updated_at, deleted_at`

// ProfileRepository implements models.Repository[*models.PersistedProfile] for the profile library.
//
// Rankings, rank sizes and candidate names are stored as JSON text columns.
type ProfileRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.PersistedProfile] = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository with the given database connection
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile into the database with generated ID and sequence
func (r *ProfileRepository) Create(profile *models.PersistedProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "profiles")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	cols, err := encodeArgs(profile.Args())
	if err != nil {
		return err
	}

	id := shared.GenerateID()

	query := `
		INSERT INTO profiles (id, sequence, name, description, num_cands, cand_names, rankings, rank_sizes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		profile.Name(),
		profile.Description(),
		profile.NumCands(),
		cols.names,
		cols.rankings,
		cols.sizes,
		profile.CreatedAt(),
		profile.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", wrapConstraint(err, "profile "+profile.Name()))
	}

	profile.SetID(id)
	profile.SetSequence(sequence)
	return nil
}

// Get retrieves a profile by ID, excluding soft-deleted profiles
func (r *ProfileRepository) Get(id string) (*models.PersistedProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ? AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRow(query, id), id)
}

// GetByName retrieves a live profile by its unique name
func (r *ProfileRepository) GetByName(name string) (*models.PersistedProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE name = ? AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRow(query, name), name)
}

// Update modifies an existing profile in the database
func (r *ProfileRepository) Update(profile *models.PersistedProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	cols, err := encodeArgs(profile.Args())
	if err != nil {
		return err
	}

	now := time.Now()
	profile.SetUpdatedAt(now)

	query := `
		UPDATE profiles
		SET name = ?, description = ?, num_cands = ?, cand_names = ?, rankings = ?, rank_sizes = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		profile.Name(),
		profile.Description(),
		profile.NumCands(),
		cols.names,
		cols.rankings,
		cols.sizes,
		now,
		profile.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", wrapConstraint(err, "profile "+profile.Name()))
	}

	return checkAffected(result, profile.ID())
}

// Delete soft-deletes a profile by ID
func (r *ProfileRepository) Delete(id string) error {
	query := `
		UPDATE profiles
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return checkAffected(result, id)
}

// List retrieves all profiles matching the given criteria, excluding soft-deleted profiles.
//
// Supported criteria: "name_like" (SQL LIKE pattern), "num_cands" (int) and "limit" (int).
func (r *ProfileRepository) List(criteria map[string]any) ([]*models.PersistedProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE deleted_at IS NULL`
	args := []any{}

	if pattern, ok := criteria["name_like"].(string); ok && pattern != "" {
		query += " AND name LIKE ?"
		args = append(args, pattern)
	}

	if n, ok := criteria["num_cands"].(int); ok && n > 0 {
		query += " AND num_cands = ?"
		args = append(args, n)
	}

	query += " ORDER BY sequence ASC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.PersistedProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return profiles, nil
}

// scanOne scans a single row into a [models.PersistedProfile]
func (r *ProfileRepository) scanOne(row *sql.Row, key string) (*models.PersistedProfile, error) {
	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: profile %s", shared.ErrNotFound, key)
	}
	return profile, err
}

type scanner interface {
	Scan(dest ...any) error
}

// scanProfile decodes one profile row from either [sql.Row] or [sql.Rows].
func scanProfile(s scanner) (*models.PersistedProfile, error) {
	var (
		id          string
		sequence    int
		name        string
		description string
		numCands    int
		cols        argColumns
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := s.Scan(&id, &sequence, &name, &description, &numCands, &cols.names, &cols.rankings, &cols.sizes, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	args, err := cols.decode(numCands)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", id, err)
	}

	profile := models.NewPersistedProfile(sequence, name, description, args)
	profile.SetID(id)
	profile.SetCreatedAt(createdAt)
	profile.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		profile.SetDeletedAt(&deletedAt.Time)
	}

	return profile, nil
}

// argColumns holds the JSON text columns of a stored profile.
type argColumns struct {
	names    string
	rankings string
	sizes    string
}

func encodeArgs(a models.DisplayArgs) (argColumns, error) {
	var cols argColumns
	for _, f := range []struct {
		dst *string
		v   any
	}{
		{&cols.names, a.CandNames},
		{&cols.rankings, a.Prof},
		{&cols.sizes, a.RankSizes},
	} {
		data, err := shared.MarshalJSON(f.v, false)
		if err != nil {
			return cols, fmt.Errorf("failed to encode profile: %w", err)
		}
		*f.dst = string(data)
	}
	return cols, nil
}

func (c argColumns) decode(numCands int) (models.DisplayArgs, error) {
	var (
		names    []string
		rankings [][]int
		sizes    []int
	)
	if err := json.Unmarshal([]byte(c.names), &names); err != nil {
		return models.DisplayArgs{}, fmt.Errorf("failed to decode cand_names: %w", err)
	}
	if err := json.Unmarshal([]byte(c.rankings), &rankings); err != nil {
		return models.DisplayArgs{}, fmt.Errorf("failed to decode rankings: %w", err)
	}
	if err := json.Unmarshal([]byte(c.sizes), &sizes); err != nil {
		return models.DisplayArgs{}, fmt.Errorf("failed to decode rank_sizes: %w", err)
	}

	args := models.NewDisplayArgs(rankings, sizes, names)
	args.NumCands = numCands
	return args, nil
}

func checkAffected(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: profile not found or already deleted: %s", shared.ErrNotFound, id)
	}
	return nil
}
