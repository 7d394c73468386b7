// Package seed populates the database with sample users, products, and
// orders for local testing. Orders go through the real creation transaction
// so stock counts and totals stay consistent.
package seed

import (
	"fmt"
	"math/rand"

	ordercontroller "github.com/harikumar-dev/store-products-api/controllers/order"
	"github.com/harikumar-dev/store-products-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
}

var seedProducts = []seedProduct{
	{"iPhone 15 Pro", "Latest Apple flagship with titanium design", "999.99", 25},
	{"Samsung Galaxy S24", "Android flagship with AI features", "849.99", 30},
	{"MacBook Pro M3", "14-inch laptop with M3 chip", "1999.00", 12},
	{"Dell XPS 13", "Compact ultrabook with InfinityEdge display", "1199.00", 18},
	{"Sony WH-1000XM5", "Noise cancelling over-ear headphones", "349.99", 40},
	{"Kindle Paperwhite", "E-reader with adjustable warm light", "139.99", 60},
	{"Levi's 501 Jeans", "Classic straight fit denim", "59.50", 80},
	{"Nike Air Max 270", "Everyday cushioned sneakers", "129.99", 45},
	{"The Pragmatic Programmer", "20th anniversary edition, hardcover", "44.95", 35},
	{"Clean Architecture", "A craftsman's guide to software structure", "33.99", 50},
	{"Instant Pot Duo 7-in-1", "Electric pressure cooker, 6 quart", "89.00", 22},
	{"Dyson V11 Vacuum", "Cordless stick vacuum cleaner", "499.99", 8},
}

var seedUsers = []string{
	"johnsmith", "janedoe", "mikejohnson", "sarahwilliams", "davidbrown",
	"emilyjones", "chrisgarcia", "lisamiller", "robertdavis", "mariamartinez",
}

// Run inserts the sample dataset. It is additive; existing rows are kept.
func Run(db *gorm.DB, logger *zap.Logger) error {
	users := make([]models.User, 0, len(seedUsers))
	for _, username := range seedUsers {
		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
		}
		if err := db.Where(models.User{Username: username}).
			FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", username, err)
		}
		users = append(users, user)
	}
	logger.Info("seeded users", zap.Int("count", len(users)))

	products := make([]models.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", sp.name, err)
		}
		product := models.Product{
			Name:          sp.name,
			Description:   sp.description,
			Price:         price,
			StockQuantity: sp.stock,
			IsAvailable:   true,
		}
		if err := db.Where(models.Product{Name: sp.name}).
			FirstOrCreate(&product).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", sp.name, err)
		}
		products = append(products, product)
	}
	logger.Info("seeded products", zap.Int("count", len(products)))

	orderCount := 0
	for i := 0; i < 15; i++ {
		user := users[rand.Intn(len(users))]

		itemCount := 1 + rand.Intn(3)
		picked := rand.Perm(len(products))[:itemCount]
		items := make([]ordercontroller.OrderItemRequest, 0, itemCount)
		for _, idx := range picked {
			quantity := 1 + rand.Intn(3)
			items = append(items, ordercontroller.OrderItemRequest{
				ProductID: products[idx].ID,
				Quantity:  &quantity,
			})
		}

		req := ordercontroller.CreateOrderRequest{
			UserID:          user.ID,
			ShippingAddress: fmt.Sprintf("%d Main Street, Springfield", 100+i),
			OrderItems:      items,
		}
		if _, err := ordercontroller.CreateOrder(db, logger, req); err != nil {
			// Stock may run out partway through; skip and keep seeding.
			logger.Warn("skipping seed order", zap.Error(err))
			continue
		}
		orderCount++
	}
	logger.Info("seeded orders", zap.Int("count", orderCount))

	return nil
}
