package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Deactivate the current admin's sessions and clear the token cookie.
// @Tags CMS - Auth
// @Produce json
// @Security AdminAuth
// @Success 200 {object} models.ApiResponse "Logout successful"
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if adminIDStr, exists := c.Get("adminID"); exists {
		log.Printf("[admin.logout] admin logging out: %s", adminIDStr)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if adminID, err := uuid.Parse(adminIDStr.(string)); err == nil {
			sessionService := services.GetAdminSessionService()
			if err := sessionService.Revoke(ctx, adminID); err != nil {
				log.Printf("[admin.logout] failed to revoke sessions: %v", err)
				// Logout still succeeds
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
