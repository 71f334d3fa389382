package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	_ = godotenv.Load()
}

// Standalone CLI: migrates the schema, seeds the starter catalog and creates
// the first super admin.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MOTOSOUK STORE - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
		&models.AdminSession{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedCatalog()

	email, password, name := getAdminCredentials()

	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	passwordHash, err := services.GetAdminAuthService().HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "superadmin",
		IsActive:     true,
	}
	if err := config.Gorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding complete")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Admin: %s (%s)\n", superAdmin.Email, superAdmin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login")
	fmt.Println()
}

// seedCatalog inserts the starter categories, brands and demo products.
// Safe to re-run: rows are matched by slug.
func seedCatalog() {
	categories := []models.Category{
		{Slug: "motos", NameFr: "Motos", NameAr: "دراجات نارية", Status: "Active"},
		{Slug: "scooters", NameFr: "Scooters", NameAr: "سكوترات", Status: "Active"},
		{Slug: "tricycles", NameFr: "Tricycles", NameAr: "دراجات ثلاثية العجلات", Status: "Active"},
		{Slug: "velos-electriques", NameFr: "Vélos électriques", NameAr: "دراجات كهربائية", Status: "Active"},
	}
	for i := range categories {
		if err := config.Gorm.
			Where(models.Category{Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", categories[i].Slug, err)
		}
	}
	log.Printf("✓ Seeded %d categories", len(categories))

	brands := []models.Brand{
		{Slug: "vms", Name: "VMS"},
		{Slug: "sym", Name: "SYM"},
		{Slug: "zimota", Name: "Zimota"},
		{Slug: "forza", Name: "Forza"},
	}
	for i := range brands {
		if err := config.Gorm.
			Where(models.Brand{Slug: brands[i].Slug}).
			FirstOrCreate(&brands[i]).Error; err != nil {
			log.Fatalf("Failed to seed brand %s: %v", brands[i].Slug, err)
		}
	}
	log.Printf("✓ Seeded %d brands", len(brands))

	motorType := "4-temps monocylindre"
	displacement := "110cc"
	cooling := "Air"
	transmission := "Automatique"
	maxSpeed := 90
	weight := 95.0
	original := 4590.0

	products := []models.Product{
		{
			Slug:          "scooter-vms-110",
			NameFr:        "Scooter VMS 110",
			NameAr:        "سكوتر في إم إس 110",
			DescriptionFr: "Scooter urbain économique, idéal pour les trajets quotidiens.",
			DescriptionAr: "سكوتر حضري اقتصادي مثالي للتنقل اليومي.",
			Price:         4290,
			OriginalPrice: &original,
			Featured:      true,
			CategoryID:    categories[1].ID,
			BrandID:       &brands[0].ID,
			InStock:       true,
			Quantity:      12,
			Status:        "Active",
			Images:        models.ImagesList{},
			Specs: models.MotoSpecs{
				MotorType:    &motorType,
				Displacement: &displacement,
				Cooling:      &cooling,
				Transmission: &transmission,
				MaxSpeed:     &maxSpeed,
				Weight:       &weight,
			},
		},
		{
			Slug:          "moto-zimota-125",
			NameFr:        "Moto Zimota 125",
			NameAr:        "دراجة زيموطا 125",
			DescriptionFr: "Moto polyvalente 125cc avec démarrage électrique.",
			DescriptionAr: "دراجة نارية متعددة الاستعمالات 125 سي سي مع تشغيل كهربائي.",
			Price:         6890,
			Featured:      false,
			CategoryID:    categories[0].ID,
			BrandID:       &brands[2].ID,
			InStock:       true,
			Quantity:      5,
			Status:        "Active",
			Images:        models.ImagesList{},
			Specs:         models.MotoSpecs{},
		},
	}
	for i := range products {
		if err := config.Gorm.
			Where(models.Product{Slug: products[i].Slug}).
			FirstOrCreate(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", products[i].Slug, err)
		}
	}
	log.Printf("✓ Seeded %d demo products", len(products))
}

// getAdminCredentials prompts for the first admin's details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if services.GetAdminAuthService().ValidatePassword(password) {
			break
		}
		fmt.Println("❌ Password must be at least 8 characters")
	}

	return email, password, name
}
