package category_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description Return every category with its product count, Inactive ones included.
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.DB.Query(ctx, `
		SELECT c.id, c.slug, c.name_fr, c.name_ar, c.status, c.created_at, c.updated_at,
		       COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name_fr ASC`)
	if err != nil {
		log.Printf("[cms] failed to fetch categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	defer rows.Close()

	categories := make([]models.CategoryWithProducts, 0)
	for rows.Next() {
		var row models.CategoryWithProducts
		if err := rows.Scan(&row.ID, &row.Slug, &row.NameFr, &row.NameAr, &row.Status,
			&row.CreatedAt, &row.UpdatedAt, &row.Products); err != nil {
			log.Printf("[cms] failed to scan category row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
			return
		}
		categories = append(categories, row)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
