package paymentcontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/harikumar-dev/store-products-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreatePaymentRequest struct {
	OrderID uint            `json:"order_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

type VerifyPaymentRequest struct {
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	SessionID string `json:"razorpay_order_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
	OrderID   uint   `json:"order_id" binding:"required"`
}

// GatewaysFromEnv builds the registry of configured gateways, keyed by the
// :gateway path segment.
func GatewaysFromEnv(logger *zap.Logger) (map[string]Gateway, error) {
	cfg, err := RazorpayConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return map[string]Gateway{
		"razorpay": NewRazorpayGateway(cfg, logger),
	}, nil
}

func lookupGateway(c *gin.Context, gateways map[string]Gateway) (Gateway, bool) {
	gateway, ok := gateways[c.Param("gateway")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown payment gateway"})
		return nil, false
	}
	return gateway, true
}

// -------- Handlers --------

// CreatePayment opens a gateway session for an order and stores the session
// id on the order as its payment reference.
func CreatePayment(db *gorm.DB, logger *zap.Logger, gateways map[string]Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		gateway, ok := lookupGateway(c, gateways)
		if !ok {
			return
		}

		var req CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id and amount are required"})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			return
		}

		receipt := fmt.Sprintf("order_%d-%s", order.ID, uuid.NewString())
		sessionID, err := gateway.CreateSession(c.Request.Context(), req.Amount, receipt)
		if err != nil {
			logger.Error("payment session creation failed",
				zap.Uint("order_id", order.ID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment gateway unavailable"})
			return
		}

		if err := db.Model(&order).Update("payment_id", sessionID).Error; err != nil {
			logger.Error("failed to store payment id", zap.Uint("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}

		logger.Info("payment session created",
			zap.Uint("order_id", order.ID),
			zap.String("session_id", sessionID),
		)
		c.JSON(http.StatusOK, gin.H{
			"gateway_order_id": sessionID,
			"amount":           req.Amount,
			"currency":         gateway.Currency(),
			"key":              gateway.KeyID(),
		})
	}
}

// VerifyPayment checks the gateway signature for a completed client payment.
// On success the order moves to confirmed/completed; on failure the order is
// left untouched.
func VerifyPayment(db *gorm.DB, logger *zap.Logger, gateways map[string]Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		gateway, ok := lookupGateway(c, gateways)
		if !ok {
			return
		}

		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all payment details are required"})
			return
		}

		if !gateway.VerifySignature(req.SessionID, req.PaymentID, req.Signature) {
			logger.Warn("payment verification failed",
				zap.Uint("order_id", req.OrderID),
				zap.String("session_id", req.SessionID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment verification failed"})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			return
		}

		updates := map[string]interface{}{
			"payment_status": models.PaymentStatusCompleted,
			"status":         models.OrderStatusConfirmed,
		}
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			logger.Error("failed to confirm order", zap.Uint("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}

		logger.Info("payment verified", zap.Uint("order_id", order.ID))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment verified successfully"})
	}
}
