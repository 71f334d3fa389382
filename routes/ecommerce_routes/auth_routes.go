package ecommerce_routes

import (
	"time"

	store_auth "github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/auth_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/store/auth")
	auth.Use(middleware.StorefrontSession())

	// Credential endpoints get a tight rate limit
	limited := auth.Group("")
	limited.Use(middleware.RateLimiter(10, time.Minute))
	{
		limited.POST("/register", store_auth.Register)
		limited.POST("/login", store_auth.Login)
	}

	auth.POST("/logout", store_auth.Logout)
	auth.GET("/me", middleware.RequireCustomer(), store_auth.GetMe)

	auth.GET("/google", store_auth.GoogleLogin)
	auth.GET("/google/callback", store_auth.GoogleCallback)
}
