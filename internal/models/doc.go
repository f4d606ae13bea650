// Package models defines the widget's input record and the persistent entities of the profile library.
//
// The package contains two categories of types:
//
// 1. Display arguments: the read-only record handed to the widget once per render cycle
//   - [DisplayArgs] : profile columns, rank sizes, candidate names, pinned candidates and optional margins
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [PersistedProfile] : a named profile saved in the library
//
// [DisplayArgs.Validate] is the boundary check. Nothing downstream re-validates indices or lengths.
// All persistent entities implement the [Model] interface providing ID, timestamps and validation.
// The [Repository] interface defines standard CRUD operations for database access.
package models
