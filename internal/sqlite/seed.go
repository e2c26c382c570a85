// Demo-data seeding for a freshly initialized market database.
package sqlite

import (
	"fmt"

	"github.com/calebmuhia/farmmarket/internal/auth"
	"github.com/calebmuhia/farmmarket/pkg/types"
)

// DefaultAdminUsername is the account created by Seed.
const DefaultAdminUsername = "admin"

// seedFarmer pairs a demo farmer with the products it lists.
type seedFarmer struct {
	name     string
	location string
	products []seedProduct
}

// seedProduct describes a demo product listing.
type seedProduct struct {
	name        string
	description string
	price       float64
}

// seedFarmers is the demo catalog inserted by Seed.
var seedFarmers = []seedFarmer{
	{
		name:     "Wanjiku Farms",
		location: "Nyeri",
		products: []seedProduct{
			{"Eggs", "Tray of 30 free-range eggs", 450},
			{"Sukuma Wiki", "Fresh collard greens, per bunch", 30},
			{"Tomatoes", "Per kilogram", 120},
		},
	},
	{
		name:     "Kiprono Dairy",
		location: "Eldoret",
		products: []seedProduct{
			{"Fresh Milk", "Per litre, delivered chilled", 65},
			{"Mursik", "Traditional fermented milk, per litre", 150},
		},
	},
}

// Seed populates a fresh database with a demo admin account, farmers,
// products, and one customer. Seeding is idempotent: it only runs when
// the users table is empty.
func (b *Backend) Seed(adminPassword string) error {
	// No lock held across the inserts; every statement below goes
	// through the accessors, which check the open state themselves.
	db, err := b.handle()
	if err != nil {
		return err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil // already seeded
	}

	users, err := b.GetTable(types.UsersTable)
	if err != nil {
		return err
	}
	farmers, err := b.GetTable(types.FarmersTable)
	if err != nil {
		return err
	}
	products, err := b.GetTable(types.ProductsTable)
	if err != nil {
		return err
	}
	customers, err := b.GetTable(types.CustomersTable)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	admin := &types.User{
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		Role:         types.RoleAdmin,
	}
	if _, err := users.Set(0, admin); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	for _, sf := range seedFarmers {
		farmer := &types.Farmer{Name: sf.name, Location: sf.location}
		farmerID, err := farmers.Set(0, farmer)
		if err != nil {
			return fmt.Errorf("seeding farmer %q: %w", sf.name, err)
		}
		for _, sp := range sf.products {
			product := &types.Product{
				Name:        sp.name,
				Description: sp.description,
				Price:       sp.price,
				FarmerID:    &farmerID,
			}
			if _, err := products.Set(0, product); err != nil {
				return fmt.Errorf("seeding product %q: %w", sp.name, err)
			}
		}
	}

	email := "akinyi@example.com"
	customer := &types.Customer{Name: "Akinyi Otieno", Email: &email}
	if _, err := customers.Set(0, customer); err != nil {
		return fmt.Errorf("seeding customer: %w", err)
	}

	return nil
}
