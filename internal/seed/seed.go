// Package seed resets the database and loads a small demo dataset: an
// admin, a customer, a handful of plants and two orders.
package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/services"
)

// Run wipes every table and inserts the demo dataset through the regular
// services, so hooks and defaults apply the same way they do in requests.
// On failure the database is wiped again so no partial seed survives.
func Run(db *gorm.DB, cfg *config.Config) error {
	categories := services.NewCategoryService(db)
	products := services.NewProductService(db)
	orders := services.NewOrderService(db)
	users := services.NewUserService(db)
	auth := services.NewAuthService(db, cfg, nil)

	clean := func() error {
		if err := orders.DeleteAll(); err != nil {
			return err
		}
		if err := products.DeleteAll(); err != nil {
			return err
		}
		if err := categories.DeleteAll(); err != nil {
			return err
		}
		return users.DeleteAll()
	}

	run := func() error {
		if err := clean(); err != nil {
			return err
		}

		categoryIDs := make(map[string]uint, len(seedCategories))
		for _, input := range seedCategories {
			category, err := categories.Create(input)
			if err != nil {
				return err
			}
			categoryIDs[category.Value] = category.ID
		}

		var admin, customer *models.User
		for _, input := range seedUsers {
			user, _, err := auth.Register(input)
			if err != nil {
				return err
			}
			if user.IsAdmin() {
				admin = user
			} else {
				customer = user
			}
		}

		var created []*models.Product
		for _, entry := range seedProducts {
			input := entry.input
			for _, value := range entry.categories {
				input.Categories = append(input.Categories, categoryIDs[value])
			}
			product, err := products.Create(admin, input)
			if err != nil {
				return err
			}
			created = append(created, product)
		}

		for _, input := range seedOrders {
			order, err := orders.Create(customer, input)
			if err != nil {
				return err
			}
			for i, product := range created {
				if _, err := orders.AddProduct(services.OrderLineInput{
					ProductID: product.ID,
					OrderID:   order.ID,
					Quantity:  float64(i + 1),
				}); err != nil {
					return err
				}
			}
		}

		return nil
	}

	if err := run(); err != nil {
		log.Printf("seed failed: %v", err)
		if cleanupErr := clean(); cleanupErr != nil {
			log.Printf("seed cleanup failed: %v", cleanupErr)
		}
		return apperrors.Internalf("seed failed, all changes have been reverted")
	}

	return nil
}
