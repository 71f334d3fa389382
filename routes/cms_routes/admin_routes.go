package cms_routes

import (
	"time"

	admin_auth_controller "github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/cms/admin_controller/auth"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", middleware.RateLimiter(5, time.Minute), admin_auth_controller.AdminLogin)

	protected := rg.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth_controller.AdminLogout)
		protected.GET("/me", admin_auth_controller.GetAdminMe)
	}
}
