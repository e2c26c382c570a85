package types

import "errors"

// Store defines the interface for backend-agnostic marketplace storage.
// Callers open a backend, access tables by name, and close when done.
type Store interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Open connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyOpen if called while already open.
	Open(config Config) error

	// Close releases backend resources. Idempotent: multiple calls succeed.
	// After Close, operations on tables return ErrStoreClosed.
	Close() error
}

// Store lifecycle errors.
var (
	ErrStoreClosed   = errors.New("store is closed")
	ErrAlreadyOpen   = errors.New("store is already open")
	ErrTableNotFound = errors.New("table not found")
)
