package cart_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Merge a quantity of the product into the session cart. Adding an existing product increases its line quantity.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body object true "productId and quantity"
// @Success 200 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quantity must be at least 1"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND status = ?", req.ProductID, "Active").
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[cart] failed to fetch product %d: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add item"))
		return
	}

	if !product.InStock {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product is out of stock"))
		return
	}

	session := Carts().Session(c.Request.Context(), middleware.SessionToken(c))
	state, err := session.AddItem(c.Request.Context(), lineItemFromProduct(&product), req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quantity"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cartPayload(state)))
}
