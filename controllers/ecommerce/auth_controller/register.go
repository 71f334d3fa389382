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

// Register godoc
// @Summary Register a storefront account
// @Description Create a customer account with email and password and bind it to the current session. The guest cart survives registration.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.ApiResponse "Account created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Customer
	err := config.Gorm.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[auth] failed to check existing email: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hash, err := services.HashCustomerPassword(req.Password)
	if err != nil {
		log.Printf("[auth] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	language := req.Language
	if language == "" {
		language = "fr"
	}

	customer := models.Customer{
		Email:    req.Email,
		Name:     req.Name,
		Password: hash,
		Provider: "local",
		Language: language,
		Status:   "active",
	}
	if err := config.Gorm.WithContext(ctx).Create(&customer).Error; err != nil {
		log.Printf("[auth] failed to create customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	// Bind the account to the session so the guest cart carries over
	token := middleware.SessionToken(c)
	if err := services.GetCustomerSessionService().Bind(c.Request.Context(), token, customer.ID.String()); err != nil {
		log.Printf("[auth] failed to bind session after register: %v", err)
	}

	log.Printf("✅ [auth] customer registered: %s", customer.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", customer.ToResponse()))
}
