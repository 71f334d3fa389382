package category_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category with a unique slug and bilingual names. New categories start Active.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category data"
// @Success 201 {object} models.ApiResponse "Category created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", req.Slug).
		Count(&count).Error; err != nil {
		log.Printf("[cms] failed to check category slug: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
		return
	}

	category := models.Category{
		Slug:   req.Slug,
		NameFr: req.NameFr,
		NameAr: req.NameAr,
		Status: "Active",
	}
	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[cms] failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
