package routes

import (
	"github.com/gin-gonic/gin"
	ordercontroller "github.com/harikumar-dev/store-products-api/controllers/order"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	orders := r.Group("/orders")
	{
		orders.GET("/", ordercontroller.GetOrders(db, logger))
		orders.GET("/:id/", ordercontroller.GetOrderByID(db, logger))
		orders.POST("/create/", ordercontroller.CreateOrderHandler(db, logger))
		orders.PUT("/:id/update/", ordercontroller.UpdateOrder(db, logger))
		orders.PATCH("/:id/update/", ordercontroller.UpdateOrder(db, logger))
		orders.DELETE("/:id/cancel/", ordercontroller.CancelOrderHandler(db, logger))
	}
}
