package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminMe godoc
// @Summary Get the logged-in admin
// @Description Return the profile of the admin bound to the current token.
// @Tags CMS - Auth
// @Produce json
// @Security AdminAuth
// @Success 200 {object} models.ApiResponse "Profile fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID := c.GetString("adminID")
	if adminID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).Where("id = ?", adminID).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}
		log.Printf("[admin.me] failed to fetch admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", admin.ToResponse()))
}
