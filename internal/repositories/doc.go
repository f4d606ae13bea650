// Package repositories implements SQLite persistence for the profile library.
//
// [ProfileRepository] implements models.Repository[*models.PersistedProfile]. Profiles are
// soft deleted via deleted_at timestamps and deleted rows are excluded from queries by default.
//
// Sequence numbers provide stable, human-readable ordering (profile #3) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
