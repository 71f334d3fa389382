package brand_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetBrands godoc
// @Summary List brands
// @Description Return every brand with its product count.
// @Tags CMS - Brands
// @Produce json
// @Success 200 {object} models.ApiResponse "Brands fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/brands [get]
func GetBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.DB.Query(ctx, `
		SELECT b.id, b.slug, b.name, b.logo_url, COUNT(p.id)
		FROM brands b
		LEFT JOIN products p ON p.brand_id = b.id
		GROUP BY b.id
		ORDER BY b.name ASC`)
	if err != nil {
		log.Printf("[cms] failed to fetch brands: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}
	defer rows.Close()

	brands := make([]models.BrandWithProducts, 0)
	for rows.Next() {
		var row models.BrandWithProducts
		if err := rows.Scan(&row.ID, &row.Slug, &row.Name, &row.LogoURL, &row.Products); err != nil {
			log.Printf("[cms] failed to scan brand row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
			return
		}
		brands = append(brands, row)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
}
