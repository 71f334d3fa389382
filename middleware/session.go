package middleware

import (
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/services"
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "ms_session"

// StorefrontSession guarantees every storefront request carries a session
// token. Unknown or expired tokens are replaced with a fresh guest session.
// The token keys both the customer login state and the cart snapshot.
func StorefrontSession() gin.HandlerFunc {
	sessionService := services.GetCustomerSessionService()

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(SessionCookieName)
		if err == nil && token != "" {
			customerID, resolveErr := sessionService.Resolve(ctx, token)
			if resolveErr == nil {
				c.Set("sessionToken", token)
				c.Set("customerID", customerID)
				c.Next()
				return
			}
		}

		// No usable session: issue a guest one
		token, err = sessionService.CreateSession(ctx, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
			c.Abort()
			return
		}

		c.SetCookie(SessionCookieName, token, int(services.CustomerSessionTTL.Seconds()), "/", "", false, true)
		c.Set("sessionToken", token)
		c.Set("customerID", "")
		c.Next()
	}
}

// RequireCustomer aborts requests whose session is not bound to an account
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetString("customerID")
		if customerID == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionToken returns the storefront session token set by StorefrontSession
func SessionToken(c *gin.Context) string {
	return c.GetString("sessionToken")
}
