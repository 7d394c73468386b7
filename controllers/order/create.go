package ordercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harikumar-dev/store-products-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	UserID          uint               `json:"user" binding:"required"`
	ShippingAddress string             `json:"shipping_address"`
	OrderItems      []OrderItemRequest `json:"order_items"`
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity" binding:"omitempty,gt=0"` // defaults to 1
}

// -------- Core Logic --------

// CreateOrder persists an order with its line items and decrements product
// stock, all inside one transaction. Every product row is locked FOR UPDATE
// before its stock is read, so two concurrent orders for the same product
// cannot both pass the availability check and oversell.
func CreateOrder(db *gorm.DB, logger *zap.Logger, req CreateOrderRequest) (*models.Order, error) {
	order := models.Order{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		TotalAmount:     decimal.Zero,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, item := range req.OrderItems {
			quantity := 1
			if item.Quantity != nil {
				quantity = *item.Quantity
			}

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: item.ProductID}
				}
				return err
			}

			if quantity > product.StockQuantity {
				return &InsufficientStockError{
					ProductName: product.Name,
					Requested:   quantity,
					Available:   product.StockQuantity,
				}
			}

			orderItem := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   product.ID,
				Quantity:    quantity,
				PriceAtTime: product.Price,
			}
			// A duplicate product_id in the request hits the
			// (order_id, product_id) unique index here.
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			product.StockQuantity -= quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
		}

		order.TotalAmount = total
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items").First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", order.UserID),
		zap.String("total_amount", order.TotalAmount.StringFixed(2)),
		zap.Int("items", len(order.Items)),
	)
	return &order, nil
}

// -------- Handlers --------

func CreateOrderHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := CreateOrder(db, logger, req)
		if err != nil {
			status, msg := createOrderErrorResponse(err)
			if status == http.StatusInternalServerError {
				logger.Error("order creation failed", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func createOrderErrorResponse(err error) (int, string) {
	var stockErr *InsufficientStockError
	var notFoundErr *ProductNotFoundError
	switch {
	case errors.As(err, &stockErr):
		return http.StatusBadRequest, stockErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusBadRequest, notFoundErr.Error()
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusBadRequest, "duplicate product in order items"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusBadRequest, "invalid user reference"
	default:
		return http.StatusInternalServerError, "failed to create order"
	}
}
