// @title MotoSouk Store API
// @version 1.0
// @description Bilingual motorcycle and scooter storefront plus back office.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/cms/product_controller"
	_ "github.com/MotoSouk-Ecommerce/motosouk-store-backend/docs"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/routes/cms_routes"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/routes/ecommerce_routes"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()
	// Cloudinary for product image uploads
	product_controller.InitCloudinary()

	// JWT for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Google OAuth for storefront login
	config.InitGoogleOAuth()

	// Reclaim expired and revoked admin sessions in the background
	go func() {
		for range time.Tick(time.Hour) {
			ctx, cancel := config.WithCustomTimeout(30 * time.Second)
			if _, err := services.GetAdminSessionService().PurgeExpired(ctx); err != nil {
				log.Printf("⚠️ admin session purge failed: %v", err)
			}
			cancel()
		}
	}()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Back office (at /api/v1/admin)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupAdminRoutes(adminGroup)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupCategoryRoutes(adminGroup)
	cms_routes.SetupBrandRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Storefront (at /api/v1/store)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
