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

// GoogleCallback godoc
// @Summary Google login callback
// @Description Exchange the authorization code, verify the ID token, upsert the customer account and bind it to the session, then redirect back to the storefront.
// @Tags Storefront - Auth
// @Success 307 "Redirect to storefront"
// @Failure 400 {object} models.ApiResponse "Invalid state or code"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	expectedState, err := c.Cookie("oauth_state")
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid OAuth state"))
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing authorization code"))
		return
	}

	ctx := c.Request.Context()

	oauthToken, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("[auth] failed to exchange code: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to complete Google login"))
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "No ID token in Google response"))
		return
	}

	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.Printf("[auth] failed to verify ID token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to verify Google identity"))
		return
	}

	var info models.GoogleUserInfo
	if err := idToken.Claims(&info); err != nil {
		log.Printf("[auth] failed to parse ID token claims: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read Google profile"))
		return
	}

	customer, err := upsertGoogleCustomer(&info)
	if err != nil {
		log.Printf("[auth] failed to upsert Google customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to complete Google login"))
		return
	}

	if customer.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account suspended"))
		return
	}

	token := middleware.SessionToken(c)
	if err := services.GetCustomerSessionService().Bind(ctx, token, customer.ID.String()); err != nil {
		log.Printf("[auth] failed to bind session after Google login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to complete Google login"))
		return
	}

	log.Printf("✅ [auth] Google login: %s", customer.Email)
	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL())
}

// upsertGoogleCustomer finds the account by Google subject or email, creating
// it when neither exists. An existing local account gets linked to Google.
func upsertGoogleCustomer(info *models.GoogleUserInfo) (*models.Customer, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	err := config.Gorm.WithContext(ctx).
		Where("google_id = ? OR email = ?", info.Sub, info.Email).
		First(&customer).Error

	if err == gorm.ErrRecordNotFound {
		customer = models.Customer{
			Email:         info.Email,
			Name:          info.Name,
			GoogleID:      info.Sub,
			Provider:      "google",
			EmailVerified: info.EmailVerified,
			Status:        "active",
			Language:      "fr",
		}
		if info.Picture != "" {
			customer.Avatar = &info.Picture
		}
		if err := config.Gorm.WithContext(ctx).Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"google_id":      info.Sub,
		"email_verified": info.EmailVerified,
	}
	if info.Picture != "" {
		updates["avatar"] = info.Picture
	}
	if err := config.Gorm.WithContext(ctx).Model(&customer).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
