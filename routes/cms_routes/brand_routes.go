package cms_routes

import (
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/cms/brand_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupBrandRoutes(rg *gin.RouterGroup) {
	brand := rg.Group("/brands")
	brand.Use(middleware.AdminAuthMiddleware())
	{
		brand.GET("", brand_controller.GetBrands)
		brand.POST("", brand_controller.CreateBrand)
		brand.PUT("/:id", brand_controller.UpdateBrand)
		brand.DELETE("/:id", brand_controller.DeleteBrand)
	}
}
