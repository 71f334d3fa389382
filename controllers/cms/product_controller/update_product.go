package product_controller

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

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product. Only the fields present in the body are changed.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Product updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[cms] failed to fetch product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	if req.Slug != nil && *req.Slug != product.Slug {
		var count int64
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Product{}).
			Where("slug = ? AND id != ?", *req.Slug, id).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
			return
		}
		product.Slug = *req.Slug
	}

	if req.NameFr != nil {
		product.NameFr = *req.NameFr
	}
	if req.NameAr != nil {
		product.NameAr = *req.NameAr
	}
	if req.DescriptionFr != nil {
		product.DescriptionFr = *req.DescriptionFr
	}
	if req.DescriptionAr != nil {
		product.DescriptionAr = *req.DescriptionAr
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.BrandID != nil {
		product.BrandID = req.BrandID
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Specs != nil {
		product.Specs = *req.Specs
	}

	if err := config.Gorm.WithContext(ctx).Save(&product).Error; err != nil {
		log.Printf("[cms] failed to update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
