package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a product from the cart
// @Description Drop the cart line for the product. Removing a product that is not in the cart is a no-op.
// @Tags Storefront - Cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Router /store/cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	session := Carts().Session(c.Request.Context(), middleware.SessionToken(c))
	state := session.RemoveItem(c.Request.Context(), uint(productID))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cartPayload(state)))
}
