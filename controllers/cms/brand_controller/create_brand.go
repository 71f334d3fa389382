package brand_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateBrand godoc
// @Summary Create a brand
// @Description Create a manufacturer brand with a unique slug and optional logo URL.
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Param request body models.BrandRequest true "Brand data"
// @Success 201 {object} models.ApiResponse "Brand created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/brands [post]
func CreateBrand(c *gin.Context) {
	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Brand{}).
		Where("slug = ?", req.Slug).
		Count(&count).Error; err != nil {
		log.Printf("[cms] failed to check brand slug: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create brand"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A brand with this slug already exists"))
		return
	}

	brand := models.Brand{
		Slug:    req.Slug,
		Name:    req.Name,
		LogoURL: req.LogoURL,
	}
	if err := config.Gorm.WithContext(ctx).Create(&brand).Error; err != nil {
		log.Printf("[cms] failed to create brand: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create brand"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Brand created successfully", brand))
}
