package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harikumar-dev/store-products-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price" binding:"required"` // pointer so 0.00 is a valid price
	StockQuantity int              `json:"stock_quantity" binding:"omitempty,min=0"`
	IsAvailable   *bool            `json:"is_available"` // defaults to true
}

// CreateProduct creates a new product from a full JSON payload.
func CreateProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		isAvailable := true
		if req.IsAvailable != nil {
			isAvailable = *req.IsAvailable
		}

		product := models.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         *req.Price,
			StockQuantity: req.StockQuantity,
			IsAvailable:   isAvailable,
		}

		if err := db.Create(&product).Error; err != nil {
			logger.Error("failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		logger.Info("product created",
			zap.Uint("product_id", product.ID),
			zap.String("name", product.Name),
		)
		c.JSON(http.StatusCreated, product)
	}
}
