package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/harikumar-dev/store-products-api/controllers/product"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(db, logger))
		products.GET("/export/", productcontroller.ExportProductsToExcel(db, logger))
		products.GET("/:id/", productcontroller.GetProductByID(db, logger))
		products.POST("/add/", productcontroller.CreateProduct(db, logger))
		products.PUT("/:id/update/", productcontroller.UpdateProduct(db, logger))
		products.PATCH("/:id/update/", productcontroller.UpdateProduct(db, logger))
		products.DELETE("/:id/delete/", productcontroller.DeleteProduct(db, logger))
	}
}
