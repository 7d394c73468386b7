package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harikumar-dev/store-products-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// escapeLike neutralizes LIKE metacharacters so user input only ever matches
// literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// GetProducts lists products with optional filters: case-insensitive name
// substring, inclusive min/max price, and availability.
func GetProducts(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		isAvailableStr := c.Query("is_available")

		query := db.Model(&models.Product{})

		if name != "" {
			query = query.Where("name ILIKE ?", "%"+escapeLike(name)+"%")
		}

		if minPriceStr != "" {
			minPrice, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price value"})
				return
			}
			query = query.Where("price >= ?", minPrice)
		}
		if maxPriceStr != "" {
			maxPrice, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price value"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}

		if isAvailableStr != "" {
			truthy := map[string]bool{"true": true, "1": true, "yes": true}
			query = query.Where("is_available = ?", truthy[strings.ToLower(isAvailableStr)])
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			logger.Error("failed to fetch products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
