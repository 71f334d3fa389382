package product_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/catalog"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description Retrieve active products with optional search, category, brand, price range, spec sheet and sorting filters.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description, French or Arabic)"
// @Param category query []string false "Category slugs (repeatable)"
// @Param brand query []string false "Brand slugs (repeatable)"
// @Param featured query bool false "Only featured products"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param motorType query string false "Motor type filter"
// @Param transmission query string false "Transmission filter"
// @Param minMaxSpeed query int false "Minimum top speed (km/h)"
// @Param maxMaxSpeed query int false "Maximum top speed (km/h)"
// @Param sortBy query string false "Sort key (featured | price-asc | price-desc | newest | bestselling)" default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	spec := parseFilterSpec(c)

	products, err := loadActiveProducts()
	if err != nil {
		log.Printf("[storefront] failed to load products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	resolver, err := loadSlugResolver()
	if err != nil {
		log.Printf("[storefront] failed to load slug resolver: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	matched := catalog.Query(products, spec, resolver)
	pageItems := catalog.Paginate(matched, page, limit)

	cards := make([]models.StorefrontProduct, 0, len(pageItems))
	for i := range pageItems {
		cards = append(cards, pageItems[i].ToStorefrontProduct())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		cards,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(matched),
			TotalPages: catalog.PageCount(len(matched), limit),
		},
	))
}
