package auth_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/cart_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out
// @Description Destroy the current session token and clear the session cookie. The cart snapshot stays in Redis until it expires.
// @Tags Storefront - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logged out successfully"
// @Router /store/auth/logout [post]
func Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := services.GetCustomerSessionService().Destroy(c.Request.Context(), token); err != nil {
		log.Printf("[auth] failed to destroy session: %v", err)
	}

	// Drop the in-memory cart handle too; the token is dead, so nothing
	// would ever reclaim it otherwise.
	cart_controller.Carts().Evict(token)

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
