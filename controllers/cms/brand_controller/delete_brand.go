package brand_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteBrand godoc
// @Summary Delete a brand
// @Description Delete a brand. Products referencing it keep selling with their brand link cleared.
// @Tags CMS - Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} models.ApiResponse "Brand deleted successfully"
// @Failure 404 {object} models.ApiResponse "Brand not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/brands/{id} [delete]
func DeleteBrand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Detach products first, then drop the brand
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("brand_id = ?", id).
		Update("brand_id", nil).Error; err != nil {
		log.Printf("[cms] failed to detach brand %d products: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete brand"))
		return
	}

	result := config.Gorm.WithContext(ctx).Delete(&models.Brand{}, id)
	if result.Error != nil {
		log.Printf("[cms] failed to delete brand %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete brand"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand deleted successfully", nil))
}
