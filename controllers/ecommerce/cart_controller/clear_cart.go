package cart_controller

import (
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Remove every line from the session cart.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	session := Carts().Session(c.Request.Context(), middleware.SessionToken(c))
	state := session.Clear(c.Request.Context())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartPayload(state)))
}
