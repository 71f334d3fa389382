package product_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProductStats godoc
// @Summary Get product statistics
// @Description Return catalog-wide counts and the average active price for the back-office dashboard.
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Stats fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.ProductStatsResponseItem
	err := config.DB.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'Active'),
		       COUNT(*) FILTER (WHERE status = 'Draft'),
		       COUNT(*) FILTER (WHERE featured),
		       COUNT(*) FILTER (WHERE NOT in_stock),
		       COALESCE(AVG(price) FILTER (WHERE status = 'Active'), 0)
		FROM products`).
		Scan(
			&stats.TotalProducts,
			&stats.ActiveProducts,
			&stats.DraftProducts,
			&stats.FeaturedProducts,
			&stats.OutOfStock,
			&stats.AveragePrice,
		)
	if err != nil {
		log.Printf("[cms] failed to fetch product stats: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched successfully", stats))
}
