// Package sqlite implements the SQLite storage backend for the farm
// market. The schema carries every integrity rule the marketplace relies
// on: unique usernames and customer emails, the role and status
// enumerations, and enforced foreign keys between products, farmers,
// customers, and transactions.
package sqlite

// Schema DDL for all tables. IDs are assigned by the engine's
// AUTOINCREMENT sequence; timestamps are RFC3339 text.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('admin', 'farmer', 'customer')),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createFarmers = `CREATE TABLE IF NOT EXISTS farmers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    location TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    price REAL NOT NULL CHECK (price >= 0),
    image_url TEXT,
    farmer_id INTEGER,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (farmer_id) REFERENCES farmers(id) ON DELETE RESTRICT
);`

	createCustomers = `CREATE TABLE IF NOT EXISTS customers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT UNIQUE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createTransactions = `CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    reference TEXT NOT NULL UNIQUE,
    product_id INTEGER NOT NULL,
    customer_id INTEGER NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    total_price REAL NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending'
        CHECK (status IN ('pending', 'paid', 'shipped', 'delivered', 'cancelled')),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT,
    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE RESTRICT
);`
)

// Index DDL for common queries.
const (
	idxUsersRole            = `CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);`
	idxProductsFarmer       = `CREATE INDEX IF NOT EXISTS idx_products_farmer ON products(farmer_id);`
	idxTransactionsProduct  = `CREATE INDEX IF NOT EXISTS idx_transactions_product ON transactions(product_id);`
	idxTransactionsCustomer = `CREATE INDEX IF NOT EXISTS idx_transactions_customer ON transactions(customer_id);`
	idxTransactionsStatus   = `CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createFarmers,
	createProducts,
	createCustomers,
	createTransactions,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxUsersRole,
	idxProductsFarmer,
	idxTransactionsProduct,
	idxTransactionsCustomer,
	idxTransactionsStatus,
}
