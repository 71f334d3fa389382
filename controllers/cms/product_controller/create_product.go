package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product with bilingual names, pricing, spec sheet and images. Slugs must be unique.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param request body models.ProductRequest true "Product data"
// @Success 201 {object} models.ApiResponse "Product created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	start := time.Now()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", req.Slug).
		Count(&count).Error; err != nil {
		log.Printf("[cms] failed to check product slug: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
		return
	}

	var category models.Category
	if err := config.Gorm.WithContext(ctx).First(&category, req.CategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[cms] failed to check category: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	if req.BrandID != nil {
		var brand models.Brand
		if err := config.Gorm.WithContext(ctx).First(&brand, *req.BrandID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Brand not found"))
				return
			}
			log.Printf("[cms] failed to check brand: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
			return
		}
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		Slug:          req.Slug,
		NameFr:        req.NameFr,
		NameAr:        req.NameAr,
		DescriptionFr: req.DescriptionFr,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Featured:      req.Featured,
		CategoryID:    req.CategoryID,
		BrandID:       req.BrandID,
		InStock:       inStock,
		Quantity:      req.Quantity,
		Status:        req.Status,
		Images:        req.Images,
		Specs:         req.Specs,
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[cms] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[PERF] create_product took %v", time.Since(start))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
