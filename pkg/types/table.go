package types

import "errors"

// Filter selects rows in Table.Fetch. Recognized keys are table-specific;
// every table accepts "limit" and "offset" (int).
type Filter = map[string]any

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct. Row IDs are assigned by the storage engine's sequence.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id int64) (any, error)

	// Set creates or updates an entity. When id is zero a new row is
	// inserted and the engine-assigned ID is returned; otherwise the
	// existing row is updated. Constraint failures surface as
	// ErrConstraint or ErrReferential.
	Set(id int64, data any) (int64, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID, and
	// ErrReferential if other rows still reference it.
	Delete(id int64) error

	// Fetch returns all entities matching the filter, newest first.
	// An empty or nil filter returns every entity in the table.
	Fetch(filter Filter) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter value type")
)

// Integrity errors surfaced from the storage engine. These are
// data-integrity failures, not transient faults; callers must not retry.
var (
	// ErrConstraint reports a uniqueness, check, or not-null violation.
	ErrConstraint = errors.New("constraint violation")
	// ErrReferential reports a foreign key pointing at a missing row,
	// or a delete blocked by rows that still reference the target.
	ErrReferential = errors.New("referential integrity violation")
)

// Entity validation errors.
var (
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)
