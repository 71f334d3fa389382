package category_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category that has no products. Categories still carrying products cannot be deleted.
// @Tags CMS - Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.ApiResponse "Category deleted successfully"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 409 {object} models.ApiResponse "Category still has products"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var productCount int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&productCount).Error; err != nil {
		log.Printf("[cms] failed to count category products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has products"))
		return
	}

	result := config.Gorm.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		log.Printf("[cms] failed to delete category %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
