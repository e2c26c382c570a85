package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "market.db"

// Backend implements the Store interface using an embedded SQLite
// database. The database file is the source of truth; integrity rules
// live in the schema and are enforced on every connection.
type Backend struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	tables map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not open; call Open with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table accessor for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrStoreClosed if the backend is not open.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// handle returns the database handle for a statement. Table accessors
// go through here so a Table held across Close reports ErrStoreClosed
// instead of dereferencing a nil handle.
func (b *Backend) handle() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}
	return b.db, nil
}

// Open initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database with foreign
// key enforcement on, applies the schema, and creates table accessors.
// Returns ErrAlreadyOpen if already open.
func (b *Backend) Open(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// foreign_keys is a per-connection pragma, so it goes in the DSN
	// where the driver applies it to every pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		filepath.Join(dataDir, dbFileName))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying indexes: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.open = true

	b.tables[types.UsersTable] = &usersTable{backend: b}
	b.tables[types.FarmersTable] = &farmersTable{backend: b}
	b.tables[types.ProductsTable] = &productsTable{backend: b}
	b.tables[types.CustomersTable] = &customersTable{backend: b}
	b.tables[types.TransactionsTable] = &transactionsTable{backend: b}

	return nil
}

// Close releases all resources held by the backend.
// After Close, all operations return ErrStoreClosed. Close is idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.open = false
	b.tables = make(map[string]types.Table)

	return nil
}
