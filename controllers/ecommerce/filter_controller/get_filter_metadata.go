package filter_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Return the categories and brands that have active products, the store-wide price range, and availability counts for the storefront filter sidebar.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse "Filter metadata fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/filters [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := fetchCategoryOptions(ctx)
	if err != nil {
		log.Printf("[storefront] failed to fetch category options: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filters"))
		return
	}

	brands, err := fetchBrandOptions(ctx)
	if err != nil {
		log.Printf("[storefront] failed to fetch brand options: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filters"))
		return
	}

	priceRange, availability, err := fetchRangeAndAvailability(ctx)
	if err != nil {
		log.Printf("[storefront] failed to fetch price range: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", models.FilterMetadata{
		Categories:   categories,
		Brands:       brands,
		PriceRange:   priceRange,
		Availability: availability,
	}))
}

func fetchCategoryOptions(ctx context.Context) ([]models.FilterOption, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT c.slug, c.name_fr, c.name_ar, COUNT(p.id)
		FROM categories c
		JOIN products p ON p.category_id = c.id AND p.status = 'Active'
		WHERE c.status = 'Active'
		GROUP BY c.id, c.slug, c.name_fr, c.name_ar
		ORDER BY c.name_fr ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.FilterOption, 0)
	for rows.Next() {
		var opt models.FilterOption
		if err := rows.Scan(&opt.Slug, &opt.LabelFr, &opt.LabelAr, &opt.Count); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func fetchBrandOptions(ctx context.Context) ([]models.FilterOption, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT b.slug, b.name, COUNT(p.id)
		FROM brands b
		JOIN products p ON p.brand_id = b.id AND p.status = 'Active'
		GROUP BY b.id, b.slug, b.name
		ORDER BY b.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.FilterOption, 0)
	for rows.Next() {
		var opt models.FilterOption
		if err := rows.Scan(&opt.Slug, &opt.LabelFr, &opt.Count); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func fetchRangeAndAvailability(ctx context.Context) (*models.PriceRangeData, *models.AvailabilityData, error) {
	var priceRange models.PriceRangeData
	var availability models.AvailabilityData

	err := config.DB.QueryRow(ctx, `
		SELECT COALESCE(MIN(price), 0),
		       COALESCE(MAX(price), 0),
		       COUNT(*) FILTER (WHERE in_stock),
		       COUNT(*) FILTER (WHERE NOT in_stock)
		FROM products
		WHERE status = 'Active'`).
		Scan(&priceRange.Min, &priceRange.Max, &availability.InStock, &availability.OutOfStock)
	if err != nil {
		return nil, nil, err
	}

	return &priceRange, &availability, nil
}
