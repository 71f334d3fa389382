package auth_controller

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

func generateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GoogleLogin godoc
// @Summary Start Google login
// @Description Redirect the browser to Google's consent screen. A state token is stored in a short-lived cookie to guard the callback.
// @Tags Storefront - Auth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/google [get]
func GoogleLogin(c *gin.Context) {
	state, err := generateStateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start Google login"))
		return
	}

	// State cookie guards the callback against CSRF
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
