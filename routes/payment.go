package routes

import (
	"github.com/gin-gonic/gin"
	paymentcontroller "github.com/harikumar-dev/store-products-api/controllers/payment"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger, gateways map[string]paymentcontroller.Gateway) {
	payments := r.Group("/payments")
	{
		payments.POST("/:gateway/create/", paymentcontroller.CreatePayment(db, logger, gateways))
		payments.POST("/:gateway/verify/", paymentcontroller.VerifyPayment(db, logger, gateways))
	}
}
