package product_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStorefrontProductBySlug godoc
// @Summary Get a storefront product
// @Description Retrieve one active product by slug and increment its view counter.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, "Active").
		Preload("Category").
		Preload("Brand").
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[storefront] failed to fetch product %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// Best-effort view counter; losing an increment is fine
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("[storefront] failed to bump views for %s: %v", slug, err)
	}

	detail := models.StorefrontProductDetail{
		ID:            product.ID,
		Slug:          product.Slug,
		NameFr:        product.NameFr,
		NameAr:        product.NameAr,
		DescriptionFr: product.DescriptionFr,
		DescriptionAr: product.DescriptionAr,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Featured:      product.Featured,
		InStock:       product.InStock,
		Quantity:      product.Quantity,
		Images:        product.Images,
		Specs:         product.Specs,
		Views:         product.Views + 1,
		CreatedAt:     product.CreatedAt,
	}
	if product.Category != nil {
		detail.CategorySlug = product.Category.Slug
	}
	if product.Brand != nil {
		detail.BrandSlug = product.Brand.Slug
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
