package brand_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateBrand godoc
// @Summary Update a brand
// @Description Partially update a brand's slug, name or logo.
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param request body models.UpdateBrandRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Brand updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Brand not found"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/brands/{id} [put]
func UpdateBrand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brand models.Brand
	if err := config.Gorm.WithContext(ctx).First(&brand, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
			return
		}
		log.Printf("[cms] failed to fetch brand %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update brand"))
		return
	}

	if req.Slug != nil && *req.Slug != brand.Slug {
		var count int64
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Brand{}).
			Where("slug = ? AND id != ?", *req.Slug, id).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update brand"))
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A brand with this slug already exists"))
			return
		}
		brand.Slug = *req.Slug
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.LogoURL != nil {
		brand.LogoURL = req.LogoURL
	}

	if err := config.Gorm.WithContext(ctx).Save(&brand).Error; err != nil {
		log.Printf("[cms] failed to update brand %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update brand"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand updated successfully", brand))
}
