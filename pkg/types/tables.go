package types

// Standard table names for Store.GetTable.
const (
	UsersTable        = "users"
	FarmersTable      = "farmers"
	ProductsTable     = "products"
	CustomersTable    = "customers"
	TransactionsTable = "transactions"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	UsersTable,
	FarmersTable,
	ProductsTable,
	CustomersTable,
	TransactionsTable,
}
