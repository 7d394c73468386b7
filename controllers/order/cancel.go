package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harikumar-dev/store-products-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CancelOrder restores the stock deducted at creation time and marks the
// order cancelled, all-or-nothing. Cancelling an already-cancelled order is a
// no-op so repeated calls never double-restore stock.
func CancelOrder(db *gorm.DB, logger *zap.Logger, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			return err
		}

		if order.Status == models.OrderStatusCancelled {
			logger.Info("order already cancelled", zap.Uint("order_id", orderID))
			return nil
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				return err
			}

			product.StockQuantity += item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			logger.Info("restored stock",
				zap.Uint("product_id", product.ID),
				zap.Int("quantity", item.Quantity),
			)
		}

		order.Status = models.OrderStatusCancelled
		return tx.Save(&order).Error
	})
}

func CancelOrderHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		if err := CancelOrder(db, logger, uint(orderID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("order cancellation failed", zap.Uint64("order_id", orderID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
	}
}
