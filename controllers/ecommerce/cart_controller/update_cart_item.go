package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Set a cart line's quantity
// @Description Set the absolute quantity of a cart line. A quantity of zero or less removes the line.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body object true "quantity"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /store/cart/items/{productId} [put]
func UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	session := Carts().Session(c.Request.Context(), middleware.SessionToken(c))
	state := session.UpdateQuantity(c.Request.Context(), uint(productID), req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartPayload(state)))
}
