package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harikumar-dev/store-products-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteProduct removes a product. Referencing order items are deleted by the
// ON DELETE CASCADE foreign key; this is a deliberate, tested rule rather than
// an implicit default.
func DeleteProduct(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			logger.Error("failed to delete product", zap.Uint64("product_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		logger.Info("product deleted",
			zap.Uint("product_id", product.ID),
			zap.String("name", product.Name),
		)
		c.Status(http.StatusNoContent)
	}
}
