package product_controller

import (
	"log"
	"os"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
)

// Cloudinary is the shared upload client for product images
var Cloudinary *services.CloudinaryService

// InitCloudinary wires the Cloudinary client from environment variables.
// Image upload endpoints return 503 until this succeeds.
func InitCloudinary() {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("⚠️  Cloudinary credentials not set, image uploads disabled")
		return
	}

	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		return
	}

	Cloudinary = svc
	log.Println("✅ Cloudinary initialized")
}
