// Table accessor for customer profiles. Email is optional; when present
// it is unique across customers, and duplicate emails fail with
// ErrConstraint. Multiple customers without an email may coexist.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// Compile-time interface check: customersTable must implement Table.
var _ types.Table = (*customersTable)(nil)

// customersTable implements the Table interface for the customers entity type.
type customersTable struct {
	backend *Backend
}

// Get retrieves a customer by ID and hydrates the row to *types.Customer.
func (ct *customersTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	db, err := ct.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, name, email, created_at, updated_at FROM customers WHERE id = ?",
		id,
	)
	customer, err := hydrateCustomer(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting customer %d: %w", id, err)
	}
	return customer, nil
}

// Set persists a customer. When id is zero a new row is inserted and the
// engine-assigned ID is returned; otherwise the existing row is updated.
func (ct *customersTable) Set(id int64, data any) (int64, error) {
	customer, ok := data.(*types.Customer)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if customer.Name == "" {
		return 0, types.ErrInvalidName
	}

	db, err := ct.backend.handle()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	if id == 0 {
		customer.CreatedAt = now
		customer.UpdatedAt = now
		res, err := db.Exec(
			"INSERT INTO customers (name, email, created_at, updated_at) VALUES (?, ?, ?, ?)",
			customer.Name, customer.Email,
			formatTime(customer.CreatedAt), formatTime(customer.UpdatedAt),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting customer: %w", classify(err))
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading assigned customer ID: %w", err)
		}
		customer.ID = newID
		return newID, nil
	}

	customer.UpdatedAt = now
	res, err := db.Exec(
		"UPDATE customers SET name = ?, email = ?, updated_at = ? WHERE id = ?",
		customer.Name, customer.Email, formatTime(customer.UpdatedAt), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating customer %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking customer update: %w", err)
	}
	if affected == 0 {
		return 0, types.ErrNotFound
	}
	customer.ID = id
	return id, nil
}

// Delete removes a customer by ID. Fails with ErrReferential if
// transactions still reference the customer.
func (ct *customersTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	db, err := ct.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting customer %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking customer deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries customers matching the filter, newest first.
// Recognized keys: "email" (string), plus limit/offset.
func (ct *customersTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT id, name, email, created_at, updated_at FROM customers"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["email"]; ok {
			email, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "email = ?")
			args = append(args, email)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id DESC"

	clause, err := limitOffsetClause(filter)
	if err != nil {
		return nil, err
	}
	query += clause

	db, err := ct.backend.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching customers: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		customer, err := hydrateCustomer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating customer: %w", err)
		}
		results = append(results, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}
	return results, nil
}

// hydrateCustomer converts a scanned row into a *types.Customer.
func hydrateCustomer(scan func(...any) error) (*types.Customer, error) {
	var c types.Customer
	var email sql.NullString
	var createdAt, updatedAt string
	if err := scan(&c.ID, &c.Name, &email, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	var err error
	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
