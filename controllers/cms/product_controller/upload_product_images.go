package product_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cache"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadProductImages godoc
// @Summary Upload product images
// @Description Upload one or more images to Cloudinary and append them to the product's image list.
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param images formData file true "Image files (repeatable)"
// @Success 200 {object} models.ApiResponse "Images uploaded successfully"
// @Failure 400 {object} models.ApiResponse "No files provided"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 503 {object} models.ApiResponse "Image uploads disabled"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/products/{id}/images [post]
func UploadProductImages(c *gin.Context) {
	if Cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No image files provided"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[cms] failed to fetch product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	start := time.Now()
	urls, err := Cloudinary.UploadProductImages(ctx, files, product.Slug)
	if err != nil {
		log.Printf("[cms] failed to upload images for %s: %v", product.Slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}
	log.Printf("[PERF] uploaded %d images for %s in %v", len(urls), product.Slug, time.Since(start))

	for _, url := range urls {
		product.Images = append(product.Images, models.ProductImage{URL: url})
	}
	if err := config.Gorm.WithContext(ctx).
		Model(&product).
		Update("images", product.Images).Error; err != nil {
		log.Printf("[cms] failed to save image list for %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save images"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{
		"urls":   urls,
		"images": product.Images,
	}))
}
