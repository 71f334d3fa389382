package category_controller

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

// UpdateCategory godoc
// @Summary Update a category
// @Description Partially update a category's slug, names or status.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Category updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.Gorm.WithContext(ctx).First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[cms] failed to fetch category %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		var count int64
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Category{}).
			Where("slug = ? AND id != ?", *req.Slug, id).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
			return
		}
		category.Slug = *req.Slug
	}

	if req.NameFr != nil {
		category.NameFr = *req.NameFr
	}
	if req.NameAr != nil {
		category.NameAr = *req.NameAr
	}
	if req.Status != nil {
		category.Status = *req.Status
	}

	if err := config.Gorm.WithContext(ctx).Save(&category).Error; err != nil {
		log.Printf("[cms] failed to update category %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
