package auth_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMe godoc
// @Summary Get the logged-in customer
// @Description Return the profile of the customer bound to the current session.
// @Tags Storefront - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Profile fetched successfully"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/me [get]
func GetMe(c *gin.Context) {
	customerID, err := uuid.Parse(c.GetString("customerID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := config.Gorm.WithContext(ctx).Where("id = ?", customerID).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
			return
		}
		log.Printf("[auth] failed to fetch customer %s: %v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", customer.ToResponse()))
}
