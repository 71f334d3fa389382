package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Permanently delete a product. Past order items keep their snapshotted name and price.
// @Tags CMS - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Product deleted successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		log.Printf("[cms] failed to delete product %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[cms] product %d deleted", id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
