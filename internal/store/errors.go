// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVehicleNotFound is returned when no vehicle matches the requested
	// dealer, source and VIN.
	ErrVehicleNotFound = errors.New("vehicle was not found")

	// ErrVehicleConflict is returned when an insert or update violates the
	// (dealer_id, source, vin) uniqueness constraint.
	ErrVehicleConflict = errors.New("vehicle with this vin already exists")

	// ErrSyncRunNotFound is returned when a run does not exist or belongs to
	// another dealer.
	ErrSyncRunNotFound = errors.New("sync run was not found")

	// ErrSyncRunFinalized is returned when a run that already has a
	// completion time is finalized again.
	ErrSyncRunFinalized = errors.New("sync run is already finalized")

	// ErrDealerConfigNotFound is returned when a dealer has no feed
	// configuration row.
	ErrDealerConfigNotFound = errors.New("dealer feed configuration was not found")

	// ErrDealerUserNotFound is returned when a user is not linked to any
	// dealer.
	ErrDealerUserNotFound = errors.New("user is not linked to a dealer")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
