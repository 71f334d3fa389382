package cart_controller

import (
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the current cart
// @Description Return the cart attached to the storefront session, rehydrating it from Redis when needed.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	session := Carts().Session(c.Request.Context(), middleware.SessionToken(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartPayload(session.State())))
}
