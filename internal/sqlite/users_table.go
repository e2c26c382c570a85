// Table accessor for marketplace user accounts. Username uniqueness and
// the role enumeration are enforced by the schema; violations surface as
// ErrConstraint.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// Compile-time interface check: usersTable must implement Table.
var _ types.Table = (*usersTable)(nil)

// usersTable implements the Table interface for the users entity type.
type usersTable struct {
	backend *Backend
}

// Get retrieves a user by ID and hydrates the row to *types.User.
func (ut *usersTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	db, err := ut.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, username, password, role, created_at, updated_at FROM users WHERE id = ?",
		id,
	)
	user, err := hydrateUser(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return user, nil
}

// Set persists a user. When id is zero a new row is inserted and the
// engine-assigned ID is returned; otherwise the existing row is updated.
// The role enumeration and username uniqueness are left to the schema so
// violations surface as ErrConstraint.
func (ut *usersTable) Set(id int64, data any) (int64, error) {
	user, ok := data.(*types.User)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if user.Username == "" {
		return 0, types.ErrInvalidName
	}
	if user.Role == "" {
		user.Role = types.RoleCustomer
	}

	db, err := ut.backend.handle()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	if id == 0 {
		user.CreatedAt = now
		user.UpdatedAt = now
		res, err := db.Exec(
			"INSERT INTO users (username, password, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			user.Username, user.PasswordHash, user.Role,
			formatTime(user.CreatedAt), formatTime(user.UpdatedAt),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting user: %w", classify(err))
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading assigned user ID: %w", err)
		}
		user.ID = newID
		return newID, nil
	}

	user.UpdatedAt = now
	res, err := db.Exec(
		"UPDATE users SET username = ?, password = ?, role = ?, updated_at = ? WHERE id = ?",
		user.Username, user.PasswordHash, user.Role, formatTime(user.UpdatedAt), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating user %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking user update: %w", err)
	}
	if affected == 0 {
		return 0, types.ErrNotFound
	}
	user.ID = id
	return id, nil
}

// Delete removes a user by ID.
func (ut *usersTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	db, err := ut.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting user %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking user deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries users matching the filter, newest first.
// Recognized keys: "role" (string), "roles" ([]string), "username"
// (string), plus limit/offset.
func (ut *usersTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT id, username, password, role, created_at, updated_at FROM users"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["role"]; ok {
			role, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "role = ?")
			args = append(args, role)
		}
		if v, ok := filter["roles"]; ok {
			roles, ok := v.([]string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			if len(roles) > 0 {
				placeholders := make([]string, len(roles))
				for i, r := range roles {
					placeholders[i] = "?"
					args = append(args, r)
				}
				conditions = append(conditions, "role IN ("+strings.Join(placeholders, ", ")+")")
			}
		}
		if v, ok := filter["username"]; ok {
			username, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "username = ?")
			args = append(args, username)
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

	db, err := ut.backend.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		user, err := hydrateUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating user: %w", err)
		}
		results = append(results, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return results, nil
}

// hydrateUser converts a scanned row into a *types.User.
func hydrateUser(scan func(...any) error) (*types.User, error) {
	var u types.User
	var createdAt, updatedAt string
	if err := scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	u.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &u, nil
}
