package cms_routes

import (
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/cms/category_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())
	{
		category.GET("", category_controller.GetCategories)
		category.POST("", category_controller.CreateCategory)
		category.PUT("/:id", category_controller.UpdateCategory)
		category.PATCH("/:id/status", category_controller.UpdateCategoryStatus)
		category.DELETE("/:id", category_controller.DeleteCategory)
	}
}
