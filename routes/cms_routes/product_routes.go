package cms_routes

import (
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/cms/product_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	{
		product.GET("", product_controller.GetProducts)
		product.GET("/stats", product_controller.GetProductStats)
		product.GET("/:id", product_controller.GetProductByID)

		product.POST("", product_controller.CreateProduct)
		product.PUT("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)

		product.POST("/:id/images", product_controller.UploadProductImages)
	}
}
