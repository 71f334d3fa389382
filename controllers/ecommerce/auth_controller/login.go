package auth_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Log in with email and password
// @Description Authenticate a customer and bind their account to the current session. The guest cart survives login.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse "Logged in successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := config.Gorm.WithContext(ctx).Where("email = ?", req.Email).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth] failed to fetch customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if customer.Password == "" || !services.VerifyCustomerPassword(customer.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if customer.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account suspended"))
		return
	}

	token := middleware.SessionToken(c)
	if err := services.GetCustomerSessionService().Bind(c.Request.Context(), token, customer.ID.String()); err != nil {
		log.Printf("[auth] failed to bind session after login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", customer.ToResponse()))
}
