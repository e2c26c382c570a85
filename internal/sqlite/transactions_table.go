// Table accessor for purchase transactions. Both foreign keys are
// enforced: a transaction referencing a missing product or customer fails
// with ErrReferential. The store persists total_price exactly as
// supplied; deriving it from quantity and product price is the command
// surface's job.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// Compile-time interface check: transactionsTable must implement Table.
var _ types.Table = (*transactionsTable)(nil)

// transactionsTable implements the Table interface for the transactions
// entity type.
type transactionsTable struct {
	backend *Backend
}

// Get retrieves a transaction by ID and hydrates the row to
// *types.Transaction.
func (tt *transactionsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	db, err := tt.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, reference, product_id, customer_id, quantity, total_price, status, created_at, updated_at FROM transactions WHERE id = ?",
		id,
	)
	txn, err := hydrateTransaction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting transaction %d: %w", id, err)
	}
	return txn, nil
}

// Set persists a transaction. When id is zero a new row is inserted with
// a generated order reference and the engine-assigned ID is returned;
// otherwise the existing row is updated. Missing product or customer
// rows fail with ErrReferential.
func (tt *transactionsTable) Set(id int64, data any) (int64, error) {
	txn, ok := data.(*types.Transaction)
	if !ok {
		return 0, types.ErrInvalidData
	}

	db, err := tt.backend.handle()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	if id == 0 {
		if txn.Reference == "" {
			txn.Reference = uuid.NewString()
		}
		if txn.Status == "" {
			txn.Status = types.StatusPending
		}
		txn.CreatedAt = now
		txn.UpdatedAt = now
		res, err := db.Exec(
			"INSERT INTO transactions (reference, product_id, customer_id, quantity, total_price, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			txn.Reference, txn.ProductID, txn.CustomerID, txn.Quantity,
			txn.TotalPrice, txn.Status,
			formatTime(txn.CreatedAt), formatTime(txn.UpdatedAt),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting transaction: %w", classify(err))
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading assigned transaction ID: %w", err)
		}
		txn.ID = newID
		return newID, nil
	}

	txn.UpdatedAt = now
	res, err := db.Exec(
		"UPDATE transactions SET product_id = ?, customer_id = ?, quantity = ?, total_price = ?, status = ?, updated_at = ? WHERE id = ?",
		txn.ProductID, txn.CustomerID, txn.Quantity, txn.TotalPrice,
		txn.Status, formatTime(txn.UpdatedAt), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating transaction %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking transaction update: %w", err)
	}
	if affected == 0 {
		return 0, types.ErrNotFound
	}
	txn.ID = id
	return id, nil
}

// Delete removes a transaction by ID.
func (tt *transactionsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	db, err := tt.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking transaction deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries transactions matching the filter, newest first.
// Recognized keys: "product_id" and "customer_id" (int or int64),
// "statuses" ([]string), "reference" (string), plus limit/offset.
func (tt *transactionsTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT id, reference, product_id, customer_id, quantity, total_price, status, created_at, updated_at FROM transactions"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["product_id"]; ok {
			productID, ok := int64Filter(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "product_id = ?")
			args = append(args, productID)
		}
		if v, ok := filter["customer_id"]; ok {
			customerID, ok := int64Filter(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "customer_id = ?")
			args = append(args, customerID)
		}
		if v, ok := filter["statuses"]; ok {
			statuses, ok := v.([]string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			if len(statuses) > 0 {
				placeholders := make([]string, len(statuses))
				for i, s := range statuses {
					placeholders[i] = "?"
					args = append(args, s)
				}
				conditions = append(conditions, "status IN ("+strings.Join(placeholders, ", ")+")")
			}
		}
		if v, ok := filter["reference"]; ok {
			reference, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "reference = ?")
			args = append(args, reference)
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

	db, err := tt.backend.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		txn, err := hydrateTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating transaction: %w", err)
		}
		results = append(results, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return results, nil
}

// hydrateTransaction converts a scanned row into a *types.Transaction.
func hydrateTransaction(scan func(...any) error) (*types.Transaction, error) {
	var t types.Transaction
	var createdAt, updatedAt string
	if err := scan(&t.ID, &t.Reference, &t.ProductID, &t.CustomerID, &t.Quantity, &t.TotalPrice, &t.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
