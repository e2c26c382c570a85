// Table accessor for farmer profiles. Farmers are referenced by
// products; deleting a farmer with listed products fails with
// ErrReferential under the RESTRICT rule.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// Compile-time interface check: farmersTable must implement Table.
var _ types.Table = (*farmersTable)(nil)

// farmersTable implements the Table interface for the farmers entity type.
type farmersTable struct {
	backend *Backend
}

// Get retrieves a farmer by ID and hydrates the row to *types.Farmer.
func (ft *farmersTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	db, err := ft.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, name, location, created_at, updated_at FROM farmers WHERE id = ?",
		id,
	)
	farmer, err := hydrateFarmer(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting farmer %d: %w", id, err)
	}
	return farmer, nil
}

// Set persists a farmer. When id is zero a new row is inserted and the
// engine-assigned ID is returned; otherwise the existing row is updated.
func (ft *farmersTable) Set(id int64, data any) (int64, error) {
	farmer, ok := data.(*types.Farmer)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if farmer.Name == "" {
		return 0, types.ErrInvalidName
	}

	db, err := ft.backend.handle()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	if id == 0 {
		farmer.CreatedAt = now
		farmer.UpdatedAt = now
		res, err := db.Exec(
			"INSERT INTO farmers (name, location, created_at, updated_at) VALUES (?, ?, ?, ?)",
			farmer.Name, farmer.Location,
			formatTime(farmer.CreatedAt), formatTime(farmer.UpdatedAt),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting farmer: %w", classify(err))
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading assigned farmer ID: %w", err)
		}
		farmer.ID = newID
		return newID, nil
	}

	farmer.UpdatedAt = now
	res, err := db.Exec(
		"UPDATE farmers SET name = ?, location = ?, updated_at = ? WHERE id = ?",
		farmer.Name, farmer.Location, formatTime(farmer.UpdatedAt), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating farmer %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking farmer update: %w", err)
	}
	if affected == 0 {
		return 0, types.ErrNotFound
	}
	farmer.ID = id
	return id, nil
}

// Delete removes a farmer by ID. Fails with ErrReferential if products
// still reference the farmer.
func (ft *farmersTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	db, err := ft.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM farmers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting farmer %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking farmer deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries farmers matching the filter, newest first.
// Recognized keys: "location" (string), plus limit/offset.
func (ft *farmersTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT id, name, location, created_at, updated_at FROM farmers"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["location"]; ok {
			location, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "location = ?")
			args = append(args, location)
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

	db, err := ft.backend.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching farmers: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		farmer, err := hydrateFarmer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating farmer: %w", err)
		}
		results = append(results, farmer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating farmers: %w", err)
	}
	return results, nil
}

// hydrateFarmer converts a scanned row into a *types.Farmer.
func hydrateFarmer(scan func(...any) error) (*types.Farmer, error) {
	var f types.Farmer
	var location sql.NullString
	var createdAt, updatedAt string
	if err := scan(&f.ID, &f.Name, &location, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	f.Location = location.String
	var err error
	f.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	f.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &f, nil
}
