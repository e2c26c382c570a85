// Shared helpers for market CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/calebmuhia/farmmarket/internal/auth"
	"github.com/calebmuhia/farmmarket/internal/sqlite"
	"github.com/calebmuhia/farmmarket/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for
// error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// openStore resolves the data directory, creates a SQLite backend, and
// opens it. The caller must defer store.Close().
func openStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// parseEntityJSON unmarshals JSON data into the correct entity struct
// based on the table name.
func parseEntityJSON(tableName string, data []byte) (any, error) {
	switch tableName {
	case types.UsersTable:
		var e types.User
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case types.FarmersTable:
		var e types.Farmer
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case types.ProductsTable:
		var e types.Product
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case types.CustomersTable:
		var e types.Customer
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case types.TransactionsTable:
		var e types.Transaction
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, fmt.Errorf("unknown table %q (valid: %s)", tableName, validTableNamesStr)
	}
}

// printEntity writes an entity as indented JSON or a one-line summary
// depending on the --json flag.
func printEntity(entity any) error {
	if flagJSON {
		output, err := json.MarshalIndent(entity, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entity: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}
	fmt.Println(summarize(entity))
	return nil
}

// printEntities writes a slice of entities as JSON or one summary line each.
func printEntities(entities []any) error {
	if flagJSON {
		output, err := json.MarshalIndent(entities, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entities: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}
	if len(entities) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, e := range entities {
		fmt.Println(summarize(e))
	}
	return nil
}

// summarize renders a one-line human-readable description of an entity.
func summarize(entity any) string {
	switch e := entity.(type) {
	case *types.User:
		return fmt.Sprintf("user %d: %s (%s)", e.ID, e.Username, e.Role)
	case *types.Farmer:
		if e.Location != "" {
			return fmt.Sprintf("farmer %d: %s, %s", e.ID, e.Name, e.Location)
		}
		return fmt.Sprintf("farmer %d: %s", e.ID, e.Name)
	case *types.Product:
		if e.FarmerID != nil {
			return fmt.Sprintf("product %d: %s @ %.2f (farmer %d)", e.ID, e.Name, e.Price, *e.FarmerID)
		}
		return fmt.Sprintf("product %d: %s @ %.2f", e.ID, e.Name, e.Price)
	case *types.Customer:
		if e.Email != nil {
			return fmt.Sprintf("customer %d: %s <%s>", e.ID, e.Name, *e.Email)
		}
		return fmt.Sprintf("customer %d: %s", e.ID, e.Name)
	case *types.Transaction:
		return fmt.Sprintf("transaction %d [%s]: product %d x%d = %.2f (%s)",
			e.ID, e.Reference, e.ProductID, e.Quantity, e.TotalPrice, e.Status)
	default:
		return fmt.Sprintf("%+v", entity)
	}
}

// currentClaims loads and validates the stored session token.
// Returns auth.ErrNotLoggedIn when no valid session exists.
func currentClaims() (*auth.Claims, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	token, err := auth.LoadSession(configDir)
	if err != nil {
		return nil, err
	}
	claims, err := auth.ValidateToken([]byte(configAuthSecret), token)
	if err != nil {
		// An expired token reads the same as no session.
		return nil, auth.ErrNotLoggedIn
	}
	return claims, nil
}

// requireRole ensures the current session belongs to one of the given
// roles. Admins pass every role check.
func requireRole(roles ...string) (*auth.Claims, error) {
	claims, err := currentClaims()
	if err != nil {
		return nil, err
	}
	if claims.Role == types.RoleAdmin {
		return claims, nil
	}
	for _, role := range roles {
		if claims.Role == role {
			return claims, nil
		}
	}
	return nil, fmt.Errorf("requires one of roles: %s", strings.Join(roles, ", "))
}

// isEntityNotFound returns true if the error wraps ErrNotFound.
func isEntityNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
