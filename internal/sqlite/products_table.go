// Table accessor for product listings. FarmerID is optional; when set it
// must reference an existing farmer or the insert fails with
// ErrReferential.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// Compile-time interface check: productsTable must implement Table.
var _ types.Table = (*productsTable)(nil)

// productsTable implements the Table interface for the products entity type.
type productsTable struct {
	backend *Backend
}

// Get retrieves a product by ID and hydrates the row to *types.Product.
func (pt *productsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	db, err := pt.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT id, name, description, price, image_url, farmer_id, created_at, updated_at FROM products WHERE id = ?",
		id,
	)
	product, err := hydrateProduct(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}
	return product, nil
}

// Set persists a product. When id is zero a new row is inserted and the
// engine-assigned ID is returned; otherwise the existing row is updated.
// A dangling FarmerID fails with ErrReferential; a negative price fails
// with ErrConstraint via the schema check.
func (pt *productsTable) Set(id int64, data any) (int64, error) {
	product, ok := data.(*types.Product)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if product.Name == "" {
		return 0, types.ErrInvalidName
	}

	db, err := pt.backend.handle()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	if id == 0 {
		product.CreatedAt = now
		product.UpdatedAt = now
		res, err := db.Exec(
			"INSERT INTO products (name, description, price, image_url, farmer_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			product.Name, product.Description, product.Price, product.ImageURL,
			product.FarmerID,
			formatTime(product.CreatedAt), formatTime(product.UpdatedAt),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting product: %w", classify(err))
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading assigned product ID: %w", err)
		}
		product.ID = newID
		return newID, nil
	}

	product.UpdatedAt = now
	res, err := db.Exec(
		"UPDATE products SET name = ?, description = ?, price = ?, image_url = ?, farmer_id = ?, updated_at = ? WHERE id = ?",
		product.Name, product.Description, product.Price, product.ImageURL,
		product.FarmerID, formatTime(product.UpdatedAt), id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating product %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking product update: %w", err)
	}
	if affected == 0 {
		return 0, types.ErrNotFound
	}
	product.ID = id
	return id, nil
}

// Delete removes a product by ID. Fails with ErrReferential if
// transactions still reference the product.
func (pt *productsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	db, err := pt.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking product deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries products matching the filter, newest first.
// Recognized keys: "farmer_id" (int or int64), "max_price" (float64),
// plus limit/offset.
func (pt *productsTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT id, name, description, price, image_url, farmer_id, created_at, updated_at FROM products"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["farmer_id"]; ok {
			farmerID, ok := int64Filter(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "farmer_id = ?")
			args = append(args, farmerID)
		}
		if v, ok := filter["max_price"]; ok {
			maxPrice, ok := v.(float64)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "price <= ?")
			args = append(args, maxPrice)
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

	db, err := pt.backend.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		product, err := hydrateProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating product: %w", err)
		}
		results = append(results, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return results, nil
}

// hydrateProduct converts a scanned row into a *types.Product.
func hydrateProduct(scan func(...any) error) (*types.Product, error) {
	var p types.Product
	var description, imageURL sql.NullString
	var farmerID sql.NullInt64
	var createdAt, updatedAt string
	if err := scan(&p.ID, &p.Name, &description, &p.Price, &imageURL, &farmerID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Description = description.String
	p.ImageURL = imageURL.String
	if farmerID.Valid {
		p.FarmerID = &farmerID.Int64
	}
	var err error
	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
