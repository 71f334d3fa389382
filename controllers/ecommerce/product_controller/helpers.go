package product_controller

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/catalog"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Query parsing helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// specParam maps empty strings and the legacy "all" sentinel to nil so the
// query engine only ever sees real constraints.
func specParam(c *gin.Context, name string) *string {
	v := strings.TrimSpace(c.Query(name))
	if v == "" || strings.EqualFold(v, "all") {
		return nil
	}
	return &v
}

// floatParam returns nil for missing or unparseable values — a garbage price
// bound means "no constraint", never an error.
func floatParam(c *gin.Context, name string) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

func intParam(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// parseFilterSpec translates the storefront query string into the engine's
// FilterSpec.
func parseFilterSpec(c *gin.Context) catalog.FilterSpec {
	return catalog.FilterSpec{
		Featured:   c.Query("featured") == "true",
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		MinPrice:   floatParam(c, "minPrice"),
		MaxPrice:   floatParam(c, "maxPrice"),
		Search:     c.Query("q"),
		SortBy:     c.DefaultQuery("sortBy", catalog.SortFeatured),

		MotorType:    specParam(c, "motorType"),
		Displacement: specParam(c, "displacement"),
		Cooling:      specParam(c, "cooling"),
		FuelSystem:   specParam(c, "fuelSystem"),
		Transmission: specParam(c, "transmission"),
		Starter:      specParam(c, "starter"),
		Brakes:       specParam(c, "brakes"),
		WheelSize:    specParam(c, "wheelSize"),
		Dashboard:    specParam(c, "dashboard"),
		Ignition:     specParam(c, "ignition"),
		Headlight:    specParam(c, "headlight"),
		Tires:        specParam(c, "tires"),

		MinMaxSpeed: intParam(c, "minMaxSpeed"),
		MaxMaxSpeed: intParam(c, "maxMaxSpeed"),
		MinWeight:   floatParam(c, "minWeight"),
		MaxWeight:   floatParam(c, "maxWeight"),
	}
}

// ─────────────────────────────────────────────────────────────
// Catalog snapshot loading
// ─────────────────────────────────────────────────────────────

// loadActiveProducts returns the active product snapshot, hitting Postgres
// only when the cache has expired.
func loadActiveProducts() ([]models.Product, error) {
	if products, ok := catalog_cache.GetProducts(); ok {
		return products, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("status = ?", "Active").
		Order("created_at ASC, id ASC").
		Preload("Category").
		Preload("Brand").
		Find(&products).Error; err != nil {
		return nil, err
	}

	catalog_cache.SetProducts(products)
	log.Printf("[storefront] refreshed product snapshot (%d products)", len(products))
	return products, nil
}

// loadSlugResolver returns the cached slug → id resolver for categories and
// brands, rebuilding it from the database on expiry.
func loadSlugResolver() (*catalog_cache.Resolver, error) {
	if resolver, ok := catalog_cache.GetResolver(); ok {
		return resolver, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	if err := config.Gorm.WithContext(ctx).
		Select("id, slug").
		Where("status = ?", "Active").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	var brands []models.Brand
	if err := config.Gorm.WithContext(ctx).
		Select("id, slug").
		Find(&brands).Error; err != nil {
		return nil, err
	}

	categoryIDs := make(map[string]uint, len(categories))
	for _, cat := range categories {
		categoryIDs[cat.Slug] = cat.ID
	}
	brandIDs := make(map[string]uint, len(brands))
	for _, b := range brands {
		brandIDs[b.Slug] = b.ID
	}

	resolver := catalog_cache.NewResolver(categoryIDs, brandIDs)
	catalog_cache.SetResolver(resolver)
	return resolver, nil
}
