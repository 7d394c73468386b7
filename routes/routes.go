package routes

import (
	"github.com/gin-gonic/gin"
	paymentcontroller "github.com/harikumar-dev/store-products-api/controllers/payment"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the product, order, and
// payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger, gateways map[string]paymentcontroller.Gateway) {
	SetupProductRoutes(r, db, logger)
	SetupOrderRoutes(r, db, logger)
	SetupPaymentRoutes(r, db, logger, gateways)
}
